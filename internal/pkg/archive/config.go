package archive

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/plzerfassung/plzerfassung/internal/pkg/env"
)

// Config describes where exported reports are archived.
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	BucketName      string
	EndpointURL     string // S3-compatible services only
	Enabled         bool
}

// LoadConfig reads the S3_* settings. An enabled archive needs credentials
// and a bucket; all missing keys are reported at once.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Region:      env.GetEnv("S3_REGION", "eu-central-1"),
		EndpointURL: env.GetEnv("S3_ENDPOINT_URL", ""),
		Enabled:     env.GetBool("S3_ARCHIVE_ENABLED", false),
	}

	required := []struct {
		key string
		dst *string
	}{
		{"S3_ACCESS_KEY_ID", &cfg.AccessKeyID},
		{"S3_SECRET_ACCESS_KEY", &cfg.SecretAccessKey},
		{"S3_BUCKET_NAME", &cfg.BucketName},
	}

	var missing []string
	for _, r := range required {
		*r.dst = env.GetEnv(r.key, "")
		if *r.dst == "" {
			missing = append(missing, r.key)
		}
	}

	if cfg.Enabled && len(missing) > 0 {
		return nil, fmt.Errorf("report archive enabled but %s not set", strings.Join(missing, ", "))
	}
	return cfg, nil
}

func (c *Config) IsEnabled() bool {
	return c.Enabled
}

// ObjectKey builds reports/YYYY/MM/<id>-<file name>.
func (c *Config) ObjectKey(id, fileName string, createdAt time.Time) string {
	return fmt.Sprintf("reports/%04d/%02d/%s-%s", createdAt.Year(), int(createdAt.Month()), id, path.Base(fileName))
}
