package window

import "fmt"

func ExampleGenerate() {
	w := Generate(TypeHammingOptimal, 5)
	fmt.Printf("%.5f %.5f %.5f\n", w[0], w[1], w[2])
	// Output:
	// 0.07672 0.53836 1.00000
}

func ExampleInfo() {
	m := Info(TypeHammingOptimal)
	fmt.Printf("%s %.2f\n", m.Name, m.ENBW)
	// Output:
	// Hamming (optimal) 1.37
}
