package config

import (
	"errors"
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"log"
	"os"
	"sync"
)

type Config struct {
	Env   string `yaml:"env" env:"ENV" env-default:"local"`
	Mongo struct {
		URL      string `yaml:"url" env:"DATABASE_URL" env-default:""`
		Database string `yaml:"database" env:"DATABASE_NAME" env-default:"college"`
		Timeout  int    `yaml:"timeout" env:"DATABASE_TIMEOUT" env-default:"5"`
	} `yaml:"mongo"`
	Admin struct {
		Name     string `yaml:"name" env:"ADMIN_NAME" env-default:"Administrator"`
		Email    string `yaml:"email" env:"ADMIN_EMAIL" env-default:"admin@college.edu"`
		Password string `yaml:"password" env:"ADMIN_PASSWORD" env-default:"admin123"`
	} `yaml:"admin"`
	College struct {
		Name        string   `yaml:"name" env-default:"Greenfield College"`
		Tagline     string   `yaml:"tagline" env-default:"Learn. Grow. Lead."`
		Mission     string   `yaml:"mission" env-default:"To provide world-class education and foster innovation."`
		Established int      `yaml:"established" env-default:"1998"`
		Description string   `yaml:"description" env-default:"A community college offering undergraduate programs."`
		Programs    []string `yaml:"programs" env-default:"Engineering,Business,Arts,Science"`
		Email       string   `yaml:"email" env-default:"info@college.edu"`
		Phone       string   `yaml:"phone" env-default:"+1 555 0100"`
		Address     string   `yaml:"address" env-default:"1 College Road"`
		OfficeHours string   `yaml:"office_hours" env-default:"Mon-Fri 9:00 AM - 5:00 PM"`
	} `yaml:"college"`
	Listen struct {
		BindIP  string   `yaml:"bind_ip" env:"BIND_IP" env-default:"0.0.0.0"`
		Port    string   `yaml:"port" env:"PORT" env-default:"8000"`
		ApiKey  string   `yaml:"key" env:"API_KEY" env-default:""`
		Timeout int      `yaml:"timeout" env-default:"10"`
		Origins []string `yaml:"origins" env:"CORS_ORIGINS" env-default:"*"`
	} `yaml:"listen"`
}

var instance *Config
var once sync.Once

// MustLoad reads the yaml file at path with environment overrides. A missing
// file is not an error: the configuration then comes from the environment only.
func MustLoad(path string) *Config {
	once.Do(func() {
		conf, err := Load(path)
		if err != nil {
			log.Fatal(err)
		}
		instance = conf
	})
	return instance
}

func Load(path string) (*Config, error) {
	conf := &Config{}
	var err error
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		err = cleanenv.ReadEnv(conf)
	} else {
		err = cleanenv.ReadConfig(path, conf)
	}
	if err != nil {
		desc, _ := cleanenv.GetDescription(conf, nil)
		return nil, fmt.Errorf("%s; %s", err, desc)
	}
	return conf, nil
}
