// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the dense layer and the four-layer perceptron digit
// classifier.
//
// # Overview
//
// This package contains:
//   - Dense: y = act(W × x + b) with a ReLU or Softmax activation
//   - Sequential: container chaining modules
//   - MLP: the fixed 784→128→64→20→10 classifier returning a Digit
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/mlp/loader"
//	    "github.com/born-ml/mlp/nn"
//	)
//
//	func main() {
//	    params, err := loader.LoadParameters(weightPaths, biasPaths, loader.DefaultOptions())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    mlp, err := nn.NewMLP(params.Weights, params.Biases)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    img, _ := loader.LoadImage("digit.bin", loader.DefaultOptions())
//	    digit, err := mlp.Evaluate(img) // vectorizes img in place
//	    fmt.Println(digit)              // "3 at probability: 0.97"
//	}
//
// # Concurrency
//
// Layers are immutable after construction and may serve concurrent
// Evaluate calls, each with its own input matrix. Evaluate reshapes its
// input in place, so an input must not be shared between goroutines.
package nn
