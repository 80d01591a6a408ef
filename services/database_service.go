package services

// Database is the sink for log records written by the service logger.
type Database interface {
	WriteLogMessage(data Data) error
}

type Data interface {
	DataType() string
}
