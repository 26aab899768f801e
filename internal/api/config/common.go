package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Mongo    MongoConfig    `mapstructure:"mongo"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Blob     BlobConfig     `mapstructure:"blob"`
	MinIO    MinIOConfig    `mapstructure:"minio"`
	GCS      GCSConfig      `mapstructure:"gcs"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Logstash LogstashConfig `mapstructure:"logstash"`
	Jobs     JobsConfig     `mapstructure:"jobs"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port         int      `mapstructure:"port"`
	Mode         string   `mapstructure:"mode"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

type RedisConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// BlobConfig 选择图片存储后端: minio 或 gcs
type BlobConfig struct {
	Provider string `mapstructure:"provider"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	InternalEndpoint string `mapstructure:"internal_endpoint"`
	ExternalEndpoint string `mapstructure:"external_endpoint"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	Bucket           string `mapstructure:"bucket"`
	InternalUseSSL   bool   `mapstructure:"internal_use_ssl"`
}

// GCSConfig Google Cloud Storage 配置, CredentialsFile 为空时使用 ADC
type GCSConfig struct {
	Bucket          string `mapstructure:"bucket"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

type JobsConfig struct {
	OrphanSweep OrphanSweepConfig `mapstructure:"orphan_sweep"`
}

// OrphanSweepConfig 孤儿图片清理任务
type OrphanSweepConfig struct {
	Enable      bool   `mapstructure:"enable"`
	Spec        string `mapstructure:"spec"`
	GraceMinute int    `mapstructure:"grace_minute"`
}
