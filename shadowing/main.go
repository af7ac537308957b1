package main

import "fmt"

func main() {
	x := 5

	x = x + 1 // 现在 x 是 6

	{
		x := x * 2 // 内层的 x 遮蔽了外层的 x
		fmt.Println("The value of x in the inner scope is:", x)
	}

	// 内层作用域结束后 x 仍然是 6
	fmt.Println("The value of x is:", x)
}
