package ingest_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/symindex/ingest"
)

func ExampleDeriveTokens() {
	in := "famsize,age,sex\nGT3,18,F\nLE3,16,M\nGT3,18,M\n"
	list, header, err := ingest.LoadCSV(strings.NewReader(in))
	if err != nil {
		fmt.Println(err)
		return
	}
	tokens, header, err := ingest.DeriveTokens(list, header, "famsize_age", "famsize", "age")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(header)
	fmt.Println(tokens)
	// Output:
	// [famsize age sex famsize_age]
	// [GT3_18 LE3_16 GT3_18]
}
