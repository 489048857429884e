package appcontext

// Env tells which entrypoint started the application graph.
type Env int

const (
	// EnvServer serves the HTTP API.
	EnvServer Env = iota
	// EnvCLI answers one command and exits; its output goes to stdout.
	EnvCLI
)

func (e Env) String() string {
	switch e {
	case EnvServer:
		return "server"
	case EnvCLI:
		return "cli"
	default:
		return "unknown"
	}
}

type Ctx struct {
	Env Env
}

func Declare(env Env) Ctx {
	return Ctx{Env: env}
}
