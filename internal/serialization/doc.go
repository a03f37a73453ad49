// Package serialization reads and writes the raw parameter and image files
// consumed by the digit classifier.
//
// Every file is a flat sequence of IEEE-754 float32 values in row-major
// order, little-endian by default, with no header:
//
//	[rows*cols × 4 bytes: float32 values]
//
// The expected shape comes from the caller (see nn.WeightDims, nn.BiasDims
// and nn.ImageDims). Readers validate the file size against that shape and
// can optionally verify a SHA-256 checksum of the file contents.
//
// Example usage:
//
//	weights, biases := serialization.ParameterPaths("model/")
//	params, err := serialization.LoadParameters(weights, biases, serialization.DefaultReaderOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mlp, err := params.Network()
//
//	img, err := serialization.LoadImage("digit.bin", serialization.DefaultReaderOptions())
//	digit, err := mlp.Evaluate(img)
package serialization
