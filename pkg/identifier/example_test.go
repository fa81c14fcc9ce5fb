package identifier_test

import (
	"fmt"

	"github.com/extensioncollection/kit/pkg/identifier"
)

func ExampleIsValidVehiclePlate() {
	fmt.Println(identifier.IsValidVehiclePlate("123아4567"))
	fmt.Println(identifier.IsValidVehiclePlate("123가4567"))
	fmt.Println(identifier.IsValidVehiclePlate("123가4567", identifier.WithPersonalUse()))
	// Output:
	// true
	// false
	// true
}

func ExampleValidate() {
	res := identifier.Validate(identifier.Request{
		Input:    "010-1234-5678",
		Category: identifier.CategoryPhone,
	})
	fmt.Println(res.Matched)
	// Output: false
}
