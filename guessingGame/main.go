package main

import (
	"log"
	"os"
)

func main() {
	s := newSession(drawUniform, os.Stdin, os.Stdout)
	if err := s.run(); err != nil {
		log.Fatal(err)
	}
}
