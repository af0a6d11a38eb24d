package xbase62_test

import (
	"encoding/hex"
	"fmt"
	"log"
	"strings"

	"github.com/omeyang/xksuid/pkg/util/xbase62"
)

func Example() {
	raw, _ := hex.DecodeString("0E9110E816D1D7403226FA924557DA9B3A0F4642")

	fmt.Println(xbase62.Encode(raw))
	fmt.Println(xbase62.EncodeWithPadding(raw, 31))

	decoded, err := xbase62.Decode("000024rUCafWbTglyvWlQEuaxKqqiuY")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(strings.ToUpper(hex.EncodeToString(decoded)))

	// Output:
	// 24rUCafWbTglyvWlQEuaxKqqiuY
	// 000024rUCafWbTglyvWlQEuaxKqqiuY
	// 0E9110E816D1D7403226FA924557DA9B3A0F4642
}

func ExampleDecode_invalid() {
	_, err := xbase62.Decode("01-AB*ab")
	fmt.Println(err)

	// Output:
	// xbase62: invalid argument: character '-' at position 2 is not in the base62 alphabet
}
