package main

import "fmt"

func main() {
	fmt.Println("Hello, world!")

	anotherFunction()

	printValue(5)
	printLabeledMeasurement(5, 'h')

	y := func() int {
		x := 3
		return x + 1
	}()
	fmt.Println("The value of y is:", y)

	n := five()
	fmt.Println("The value of n is:", n)

	m := plusOne(5)
	fmt.Println("The value of m is:", m)
}

func anotherFunction() {
	fmt.Println("Another function.")
}

func printValue(x int) {
	fmt.Println("The value of x is:", x)
}

func printLabeledMeasurement(value int, unitLabel rune) {
	fmt.Printf("The Measurement is: %d%c\n", value, unitLabel)
}

func five() int {
	return 5
}

func plusOne(x int) int {
	return x + 1
}
