package conf

type Bootstrap struct {
	Server *Server
	Data   *Data
	Model  *Model
	Limit  *Limit
	Log    *Log
}

type Server struct {
	Http *HTTP
}

type HTTP struct {
	Addr        string
	Timeout     string
	CorsOrigins []string `json:"cors_origins"`
}

type Data struct {
	Database *Database
}

type Database struct {
	Driver string
	Source string
}

type Model struct {
	Path        string  `json:"path"`
	HfRepo      string  `json:"hf_repo"`
	OnnxFile    string  `json:"onnx_file"`
	Temperature float64 `json:"temperature"`
	TopK        int32   `json:"top_k"`
	CacheSize   int32   `json:"cache_size"`
}

type Limit struct {
	Qps   float64 `json:"qps"`
	Burst int32   `json:"burst"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}
