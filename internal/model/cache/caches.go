package cache

import (
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/ganeshsankaran/curve-surfer/internal/pkg/cache"
)

var ErrUnknownCache = errors.New("unknown cache")

type Flusher func(ctx context.Context) error

var (
	Departments *cache.Singular[[]string]

	CourseNumbersByDept *cache.Set[[]string]
	InstructorsByDept   *cache.Set[[]string]
	QuartersByDept      *cache.Set[[]string]

	once sync.Once

	FlusherMap map[string]Flusher
)

func Initialize(client *redis.Client) {
	once.Do(func() {
		initializeCaches(client)
	})
}

func initializeCaches(client *redis.Client) {
	FlusherMap = make(map[string]Flusher)

	Departments = cache.NewSingular[[]string]("departments")
	FlusherMap["departments"] = func(context.Context) error { return Departments.Delete() }

	CourseNumbersByDept = cache.NewSet[[]string](client, "courseNumbers#dept")
	InstructorsByDept = cache.NewSet[[]string](client, "instructors#dept")
	QuartersByDept = cache.NewSet[[]string](client, "quarters#dept")

	FlusherMap["courseNumbers#dept"] = CourseNumbersByDept.Clear
	FlusherMap["instructors#dept"] = InstructorsByDept.Clear
	FlusherMap["quarters#dept"] = QuartersByDept.Clear
}

// Names lists the purgeable caches in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(FlusherMap))
	for name := range FlusherMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Delete flushes the named cache, or every cache when name is empty.
func Delete(ctx context.Context, name string) error {
	if name == "" {
		for _, n := range Names() {
			if err := FlusherMap[n](ctx); err != nil {
				return errors.Wrapf(err, "flush %s", n)
			}
		}
		return nil
	}

	flush, ok := FlusherMap[name]
	if !ok {
		return errors.Wrap(ErrUnknownCache, name)
	}
	return flush(ctx)
}
