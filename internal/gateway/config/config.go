package config

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port   string
	Env    string
	Model  string
	Export ExportConfig
}

// ExportConfig controls the optional diagram export store. Export stays
// disabled unless an object-store endpoint is configured.
type ExportConfig struct {
	Enabled   bool
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

func Load(args []string) (*Config, error) {
	_ = godotenv.Load()

	fs := flag.NewFlagSet("designpro", flag.ContinueOnError)
	port := fs.String("port", ":8080", "server port")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:   *port,
		Env:    env,
		Model:  firstNonEmpty(strings.TrimSpace(os.Getenv("ADVISOR_MODEL")), "gemini-2.5-flash"),
		Export: loadExportConfig(),
	}, nil
}

func loadExportConfig() ExportConfig {
	endpoint := strings.TrimSpace(os.Getenv("EXPORT_S3_ENDPOINT"))
	return ExportConfig{
		Enabled:   endpoint != "",
		Endpoint:  endpoint,
		Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("EXPORT_S3_REGION")), "us-east-1"),
		AccessKey: firstNonEmpty(strings.TrimSpace(os.Getenv("EXPORT_S3_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER"))),
		SecretKey: firstNonEmpty(strings.TrimSpace(os.Getenv("EXPORT_S3_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD"))),
		Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("EXPORT_S3_BUCKET")), "designpro-exports"),
		Prefix:    firstNonEmpty(strings.TrimSpace(os.Getenv("EXPORT_S3_PREFIX")), "diagrams"),
		UseSSL:    resolveExportUseSSL(),
	}
}

func resolveExportUseSSL() bool {
	raw := strings.TrimSpace(os.Getenv("EXPORT_S3_USE_SSL"))
	if raw == "" {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
