package main

import (
	"github.com/ganeshsankaran/curve-surfer/cmd/app"
)

// @title                       Curve Surfer API
// @version                     1.0.0
// @description                 Grade distribution reports: letter grade distributions, GPA statistics and average GPA breakdowns per course, instructor and quarter.
// @BasePath                    /
// @securityDefinitions.apikey  AdminKeyAuth
// @in                          header
// @name                        Authorization
func main() {
	app.Run()
}
