// Package main provides the Axon CLI.
package main

import (
	"fmt"
	"os"

	"github.com/axon-ml/axon/linalg"
	"github.com/axon-ml/axon/nn"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Axon %s\n", version)
			return
		case "demo":
			if err := demo(); err != nil {
				fmt.Fprintf(os.Stderr, "demo failed: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Axon - dense-layer algebra for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Run a forward/backward pass on a toy layer")
}

// demo runs one forward and one backward pass on a two-neuron layer.
func demo() error {
	layer, err := nn.NewDense(nn.Config{NumNeurons: 2, Activation: nn.Sigmoid})
	if err != nil {
		return err
	}

	weights, err := linalg.NewMatrix(
		[]float64{1, 0},
		[]float64{0, 1},
	)
	if err != nil {
		return err
	}
	bias := linalg.Zeros(2)

	next, err := layer.Forward(weights, bias, nn.Sigmoid)
	if err != nil {
		return err
	}
	fmt.Printf("forward:  %v -> %v\n", layer.Values(), next.Values())

	grad, err := next.Backward(weights, linalg.NewVector(1, 1))
	if err != nil {
		return err
	}
	fmt.Printf("backward: local gradient %v\n", grad)
	return nil
}
