package main

import (
	"valuegate.jvcp.co/infrastructure"
	"valuegate.jvcp.co/infrastructure/env"
)

func init() {
	env.LoadEnv()
}

func main() {
	infrastructure.StartServer()
}
