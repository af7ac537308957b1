package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
)

const (
	lowBound  = 1
	highBound = 100
)

type outcome int

const (
	outcomeInvalid outcome = iota
	outcomeLow
	outcomeHigh
	outcomeMatch
)

type drawFunc func(low, high int) int

// 闭区间 [low, high] 上的均匀随机数
func drawUniform(low, high int) int {
	return low + rand.Intn(high-low+1)
}

type session struct {
	secret int
	reader *bufio.Reader
	out    io.Writer
}

func newSession(draw drawFunc, in io.Reader, out io.Writer) *session {
	return &session{
		secret: draw(lowBound, highBound),
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (s *session) run() error {
	fmt.Fprintln(s.out, "Welcome to the Guessing Game!")
	// fmt.Fprintln(s.out, "The secret number is:", s.secret)
	fmt.Fprintf(s.out, "I've picked a number between %d and %d. Can you guess what it is?\n", lowBound, highBound)
	for {
		result, err := s.turn()
		if err != nil {
			return err
		}
		if result == outcomeMatch {
			return nil
		}
	}
}

func (s *session) turn() (outcome, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil {
		return outcomeInvalid, fmt.Errorf("read guess failed: %w", err)
	}
	guess, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || guess < 0 { // 只接受非负整数
		fmt.Fprintln(s.out, "That doesn't seem like a number. Please enter a valid number:")
		return outcomeInvalid, nil
	}
	fmt.Fprintln(s.out, "You guessed:", guess)
	switch {
	case guess < s.secret:
		fmt.Fprintln(s.out, "Too low! Try again:")
		return outcomeLow, nil
	case guess > s.secret:
		fmt.Fprintln(s.out, "Too high! Try again:")
		return outcomeHigh, nil
	default:
		fmt.Fprintln(s.out, "Congratulations! You guessed the right number!")
		return outcomeMatch, nil
	}
}
