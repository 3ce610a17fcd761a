// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package app

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/wangtaoking1/verbtree/errors"
	"github.com/wangtaoking1/verbtree/log"
	"github.com/wangtaoking1/verbtree/parser"
	"github.com/wangtaoking1/verbtree/utils"
	"github.com/wangtaoking1/verbtree/utils/homedir"
)

// configKey names the environment variable, <APP>_CONFIG, that points to a
// settings file. There is no --config flag since every argument belongs to
// the parser.
const configKey = "config"

// Settings are the host level knobs read from the settings file and the
// environment.
type Settings struct {
	Header   string       `json:"header"    mapstructure:"header"`
	Footer   string       `json:"footer"    mapstructure:"footer"`
	AutoHelp *bool        `json:"auto-help" mapstructure:"auto-help"`
	Log      *log.Options `json:"log"       mapstructure:"log"`

	configFile string
}

// NewSettings creates settings that leave the parser as it is.
func NewSettings() *Settings {
	return &Settings{
		Log: log.NewOptions(),
	}
}

// Validate validates the settings fields.
func (s *Settings) Validate() []error {
	if s.Log == nil {
		return nil
	}
	return s.Log.Validate()
}

func (s *Settings) String() string {
	data, _ := json.Marshal(s)
	return string(data)
}

// apply overrides the parser texts and auto help flag with the ones set.
func (s *Settings) apply(p *parser.Parser) {
	if s.Header != "" {
		p.SetHeader(s.Header)
	}
	if s.Footer != "" {
		p.SetFooter(s.Footer)
	}
	if s.AutoHelp != nil {
		p.SetAutoHelp(*s.AutoHelp)
	}
}

func envPrefix(appName string) string {
	return strings.Replace(strings.ToUpper(appName), "-", "_", -1)
}

// loadSettings reads <appName>.{yaml,json,toml,...} from the working
// directory, ~/.<prefix> or /etc/<prefix>, where prefix is the part of the
// name before the first dash. A missing file is not an error.
func loadSettings(appName string) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix(appName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	defaults := NewSettings()
	v.SetDefault("header", "")
	v.SetDefault("footer", "")
	v.SetDefault("log.name", appName)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.enable-color", defaults.Log.EnableColor)
	v.SetDefault("log.disable-caller", defaults.Log.DisableCaller)
	v.SetDefault("log.disable-stacktrace", defaults.Log.DisableStacktrace)
	v.SetDefault("log.output-paths", defaults.Log.OutputPaths)
	v.SetDefault("log.error-output-paths", defaults.Log.ErrorOutputPaths)

	if cfgFile := v.GetString(configKey); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		prefix := strings.Split(appName, "-")[0]
		v.AddConfigPath(filepath.Join(homedir.HomeDir(), "."+prefix))
		v.AddConfigPath(filepath.Join("/etc", prefix))
		v.SetConfigName(appName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrapf(err, "failed to read configuration file(%s)", v.ConfigFileUsed())
		}
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, errors.Wrap(err, "failed to decode settings")
	}
	if v.IsSet("auto-help") {
		s.AutoHelp = utils.Ptr(v.GetBool("auto-help"))
	}
	s.configFile = v.ConfigFileUsed()

	return s, nil
}
