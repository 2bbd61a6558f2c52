package config

import (
	"os"

	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

var config *Config

type Auth struct {
	SecretKey    string
	AccessExpire int64 `json:",default=259200"` // 72小时
}

type Mongo struct {
	URL string
	DB  string
}

type S3 struct {
	Endpoint  string `json:",optional"`
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

type API struct {
	AIUrl      string
	AIKey      string
	AIModel    string `json:",default=llama-3.1-70b-versatile"`
	ExtractUrl string `json:",optional"`
}

type Config struct {
	service.ServiceConf
	ListenOn        string
	MetricsListenOn string `json:",default=:9091"`
	State           string `json:",default=prod"`
	Auth            Auth
	Mongo           Mongo
	Cache           cache.CacheConf
	Redis           *redis.RedisConf `json:",optional"`
	S3              S3
	Api             API
}

func NewConfig() (*Config, error) {
	c := new(Config)

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "etc/config.yaml"
	}
	log.Info("NewConfig load config from path: %s", path)
	err := conf.Load(path, c)
	if err != nil {
		return nil, err
	}

	err = c.SetUp()
	if err != nil {
		return nil, err
	}
	config = c
	return c, nil
}

func GetConfig() *Config {
	return config
}
