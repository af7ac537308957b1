package main

import "fmt"

func main() {
	repeatingWithLoop()
	returningValuesFromLoops()
	loopLabels()
	conditionalLoopsWithWhile()
	loopingThroughCollection()
	countdownWithFor()
	controlFlowQuestions()
}

func repeatingWithLoop() {
	fmt.Println("Repeating Code with loop:")

	count := 0
	for { // Go 没有 loop，用不带条件的 for 代替
		fmt.Println("again!")
		count++
		if count == 3 {
			break
		}
	}
	fmt.Println()
}

func returningValuesFromLoops() {
	fmt.Println("Returning Values from Loops:")

	counter := 0
	result := 0
	for {
		counter++
		if counter == 10 {
			result = counter * 2 // break 不能带值，先赋值再跳出
			break
		}
	}
	fmt.Println("The result is", result)
	fmt.Println()
}

func loopLabels() {
	fmt.Println("Loop Labels to Disambiguate Between Multiple Loops:")

	count := 0
countingUp:
	for {
		fmt.Println("count =", count)
		remaining := 10

		for {
			fmt.Println("remaining =", remaining)
			if remaining == 9 {
				break
			}
			if count == 2 {
				break countingUp
			}
			remaining--
		}
		count++
	}
	fmt.Println("End count =", count)
	fmt.Println()
}

func conditionalLoopsWithWhile() {
	fmt.Println("Conditional Loops with while:")

	number := 3
	for number != 0 { // 相当于 while
		fmt.Printf("%d!\n", number)
		number--
	}
	fmt.Println("LIFTOFF!!!")
	fmt.Println()
}

func loopingThroughCollection() {
	fmt.Println("Looping Through a Collection with for:")

	a := [5]int{10, 20, 30, 40, 50}
	for _, element := range a {
		fmt.Println("the value is:", element)
	}
	fmt.Println()
}

func countdownWithFor() {
	fmt.Println("Counting Down with a for Loop:")

	for number := 3; number >= 1; number-- {
		fmt.Printf("%d!\n", number)
	}
	fmt.Println("LIFTOFF!!!")
	fmt.Println()
}

func controlFlowQuestions() {
	fmt.Println("Control Flow Questions:")

	fmt.Println("Question 1: Will the code terminate?")
	x := 0
outer:
	for {
		x++
		for {
			if x > 10 {
				continue outer
			}
			break
		}
		break
	}
	fmt.Println("Yes, it will terminate.")
	fmt.Println()

	fmt.Println("Question 2: Will the program pass the compiler?")
	var a [10]int
	for i := range a {
		a[i] = 5
	}
	sum := 0
	for _, v := range a {
		sum += v
	}
	fmt.Println("Yes, it will pass, and the output is:", sum)
	fmt.Println()
}
