package devops

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

type SlackConfig struct {
	Token        string `yaml:"token"`
	InfoChannel  string `yaml:"info_channel"`
	ErrorChannel string `yaml:"error_channel"`
}

type EmailConfig struct {
	From string `yaml:"from"`
}

type Config struct {
	Listen         string      `yaml:"listen"`
	DSN            string      `yaml:"dsn"`
	MaxConnections int         `yaml:"max_connections"`
	SigningSecret  string      `yaml:"signing_secret"` // base64
	Slack          SlackConfig `yaml:"slack"`
	Email          EmailConfig `yaml:"email"`
}

var (
	once    sync.Once
	cfg     *Config
	loadErr error
)

// Load reads the service configuration once. The yaml document comes from
// the SSM parameter named by CONFIG_SSM_PARAM when set, otherwise from the
// file named by CONFIG (default config.yaml). DSN and TEMPORA_SIGNING_SECRET
// environment variables override the document.
func Load(ctx context.Context) (*Config, error) {
	once.Do(func() {
		var raw []byte

		if param := os.Getenv("CONFIG_SSM_PARAM"); param != "" {
			raw, loadErr = fetchParameter(ctx, param)
		} else {
			path := os.Getenv("CONFIG")
			if path == "" {
				path = "config.yaml"
			}
			raw, loadErr = os.ReadFile(path)
			if loadErr != nil {
				loadErr = fmt.Errorf("read config file: %w", loadErr)
			}
		}
		if loadErr != nil {
			return
		}

		parsed := &Config{}
		if err := yaml.Unmarshal(raw, parsed); err != nil {
			loadErr = fmt.Errorf("unmarshal yaml: %w", err)
			return
		}

		if dsn := os.Getenv("DSN"); dsn != "" {
			parsed.DSN = dsn
		}
		if secret := os.Getenv("TEMPORA_SIGNING_SECRET"); secret != "" {
			parsed.SigningSecret = secret
		}
		if parsed.Listen == "" {
			parsed.Listen = ":8090"
		}
		if parsed.MaxConnections == 0 {
			parsed.MaxConnections = 10
		}

		cfg = parsed
	})

	return cfg, loadErr
}

func fetchParameter(ctx context.Context, name string) ([]byte, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := ssm.NewFromConfig(awsCfg)
	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get parameter: %w", err)
	}

	return []byte(*out.Parameter.Value), nil
}
