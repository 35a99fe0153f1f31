// Package cloudwriter abstracts writing export artifacts to object storage.
// The parquet exporter writes through an ObjectWriter so upload mechanics
// stay out of the generation path.
package cloudwriter

// ObjectWriter buffers writes for a single object and uploads on Close.
type ObjectWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

// ObjectWriterFactory creates one writer per exported object.
type ObjectWriterFactory interface {
	NewWriter(bucket, objectPath string) (ObjectWriter, error)
}
