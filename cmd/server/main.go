package main

import (
	"github.com/agora-forum/agora/internal/config"
	"github.com/agora-forum/agora/internal/server"
)

func main() {
	cfg := config.Load()
	s := server.New(cfg)
	s.Run()
}
