package config

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	ChatModel ModelConf
	ChatLog   ChatLogConf
	Kafka     KafkaConf

	// origin allowed to call the API from a browser
	CorsOrigin string `json:",default=http://localhost:3000"`

	LogConf logx.LogConf
}

type ModelConf struct {
	BaseUrl        string
	APIKey         string
	Model          string
	TimeoutSeconds int `json:",default=60"`
}

type ChatLogConf struct {
	// newline-delimited JSON, one record per completed session
	Path string `json:",default=chat_logs.jsonl"`
}

type KafkaConf struct {
	Broker       []string `json:",optional"`
	ChatLogTopic string   `json:",optional"`
}
