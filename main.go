package main

import (
	"github.com/findhomy/backend/config"
	"github.com/findhomy/backend/internal/api"
)

func main() {
	api.StartServer(config.LoadConfig())
}
