package config

const (
	delimiter = "_"

	EnvPrefix = "CAUCHY"

	EnvBatchPrefix = EnvPrefix + delimiter + "BATCH"

	EnvTableSize  = EnvBatchPrefix + delimiter + "TABLE_SIZE"
	EnvNumWorkers = EnvBatchPrefix + delimiter + "NUM_WORKERS"
	EnvChunkSize  = EnvBatchPrefix + delimiter + "CHUNK_SIZE"

	EnvLoggingPrefix = EnvPrefix + delimiter + "LOGGING"

	EnvLogBufferSize  = EnvLoggingPrefix + delimiter + "BUFFER_SIZE"
	EnvLogLevel       = EnvLoggingPrefix + delimiter + "LEVEL"
	EnvLogDevelopment = EnvLoggingPrefix + delimiter + "DEVELOPMENT"
)
