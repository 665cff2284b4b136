package main

import (
	"fmt"

	"square-digit-chains/internal/chains"
)

func main() {
	fmt.Printf("Counting square-digit chains below ten million that reach 89\n\n")

	for _, s := range chains.Strategies() {
		r := chains.Run(s, chains.DefaultBound)
		fmt.Printf("%s result: %d, execution time in ms: %d\n",
			r.Name, r.Count, r.Elapsed.Milliseconds())
	}
}
