package main

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=v0.1.0" ./cmd/icebreak
var version = "dev"
