// Package keys defines the canonical storage keys shared by every component
// that reads or writes a dataset.
//
// Keys are derived from fixed naming conventions, never from record content,
// so any subsystem can locate a record without consulting another one.
package keys

import "path"

// DatasetMeta is the key of the dataset-level metadata record.
// There is exactly one such record per storage scope.
const DatasetMeta = "dataset_meta.json"

const tensorMetaFile = "tensor_meta.json"

// TensorMeta returns the key of the metadata record of tensor.
func TensorMeta(tensor string) string {
	return path.Join(tensor, tensorMetaFile)
}
