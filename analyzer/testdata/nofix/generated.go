// Code generated by hand. DO NOT EDIT.

package nofix

import "fmt"

func generated() {
	fmt.Println("hello world") // want `String literal "hello world" is used 2 times and can be extracted to constant '_s'`
	fmt.Println("hello world")
}
