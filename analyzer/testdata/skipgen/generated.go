// Code generated by hand. DO NOT EDIT.

package skipgen

import "fmt"

func generated() {
	fmt.Println("hello world")
	fmt.Println("hello world")
	fmt.Println("hello world")
}
