// Package config loads settings for the draughts binaries from
// command-line flags and DRAUGHTS_-prefixed environment variables,
// in that order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flag / env keys.
const (
	KeyBoardDim = "board-dim"
	KeyTieMax   = "tie-max"
	KeyDebug    = "debug"
	KeyNumGames = "num-games"
	KeyThreads  = "threads"
)

// EnvPrefix is the environment variable prefix; board-dim becomes
// DRAUGHTS_BOARD_DIM.
const EnvPrefix = "draughts"

type Config struct {
	v *viper.Viper
}

// Load parses args (typically os.Args[1:]) and the environment.
func (c *Config) Load(args []string) error {
	c.v = viper.New()
	fs := pflag.NewFlagSet("draughts", pflag.ContinueOnError)
	fs.Int(KeyBoardDim, 0, "board dimension; 0 means the standard 8x8")
	fs.Int(KeyTieMax, 0, "captureless plies before a tie; 0 means dim*dim/2")
	fs.Bool(KeyDebug, false, "debug logging")
	fs.Int(KeyNumGames, 100, "number of self-play games")
	fs.Int(KeyThreads, 4, "self-play worker threads")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.v.BindPFlags(fs); err != nil {
		return err
	}
	c.v.SetEnvPrefix(EnvPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	return nil
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// Set overrides a setting; used by the shell and by tests.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// SanitizedSettings returns the settings for startup logging.
func (c *Config) SanitizedSettings() string {
	keys := []string{KeyBoardDim, KeyTieMax, KeyDebug, KeyNumGames, KeyThreads}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, c.v.Get(k)))
	}
	return strings.Join(parts, " ")
}
