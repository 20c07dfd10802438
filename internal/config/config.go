// Copyright © 2026 SongDrop, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/songdrop/badgeforge/internal/i18n"
	"github.com/spf13/viper"
)

// The following keys can be accessed from the root configuration.
// Plugins are responsible for defining their own keys using the Prefix interface
var (
	// Lang is the language to use for translation
	Lang = ark("lang")
	// LogLevel is the logging level
	LogLevel = ark("log.level")
	// LogColor forces color to be enabled/disabled on the log
	LogColor = ark("log.color")
	// LogUTC forces log timestamps to be reported in UTC
	LogUTC = ark("log.utc")
	// DebugPort is the port to listen on for the debug HTTP endpoint (pprof)
	DebugPort = ark("debug.port")
	// APIRequestTimeout is the server side timeout for API calls
	APIRequestTimeout = ark("api.requestTimeout")
	// APIRequestMaxTimeout is the maximum timeout an API caller can request
	APIRequestMaxTimeout = ark("api.requestMaxTimeout")
	// APIMaxRequestSize is the maximum size of an inbound request body
	APIMaxRequestSize = ark("api.maxRequestSize")
	// CorsAllowCredentials whether the server allows credentials on CORS requests
	CorsAllowCredentials = ark("cors.credentials")
	// CorsAllowedHeaders the allowed CORS headers
	CorsAllowedHeaders = ark("cors.headers")
	// CorsAllowedMethods the allowed CORS methods
	CorsAllowedMethods = ark("cors.methods")
	// CorsAllowedOrigins the allowed CORS origins
	CorsAllowedOrigins = ark("cors.origins")
	// CorsDebug enables debug logging in the CORS library
	CorsDebug = ark("cors.debug")
	// CorsEnabled enables CORS the server
	CorsEnabled = ark("cors.enabled")
	// CorsMaxAge maximum age of a CORS preflight
	CorsMaxAge = ark("cors.maxAge")
	// BadgeCanvasSize is the square output dimension of a rendered badge
	BadgeCanvasSize = ark("badge.canvasSize")
	// BadgeOutputDir is the directory generated badge files are written to
	BadgeOutputDir = ark("badge.outputDir")
	// BadgeLogoPath is the filesystem path of the optional logo overlay
	BadgeLogoPath = ark("badge.logoPath")
	// BadgeGatewayBaseURL is the public gateway URL badge metadata uses to reference the image
	BadgeGatewayBaseURL = ark("badge.gatewayBaseURL")
	// BadgeExternalURL is the external URL recorded in the badge metadata provenance
	BadgeExternalURL = ark("badge.externalURL")
	// BadgeLicense is the license string recorded in the badge metadata provenance
	BadgeLicense = ark("badge.license")
	// PinningType is the pinning plugin to use
	PinningType = ark("pinning.type")
	// LedgerType is the ledger plugin to use
	LedgerType = ark("ledger.type")
	// LedgerTokenSymbol is the symbol set on every created badge token
	LedgerTokenSymbol = ark("ledger.tokenSymbol")
	// LedgerBurnBatchSize is the protocol limit of serials per burn transaction
	LedgerBurnBatchSize = ark("ledger.burnBatchSize")
	// MirrorType is the mirror/index plugin to use
	MirrorType = ark("mirror.type")
)

// Prefix represents the global configuration, at a nested point in
// the config hierarchy. This allows plugins to define their own
// configuration keys underneath their own prefix.
//
// Note that all values are GLOBAL so this cannot be used for per-instance
// customization. Rather for global initialization of plugins.
type Prefix interface {
	AddKnownKey(key string, defValue ...interface{})
	SubPrefix(suffix string) Prefix
	Set(key string, value interface{})

	Resolve(key string) string

	GetString(key string) string
	GetBool(key string) bool
	GetInt(key string) int
	GetUint(key string) uint
	GetInt64(key string) int64
	GetDuration(key string) time.Duration
	GetStringSlice(key string) []string
	GetObject(key string) map[string]interface{}
	UnmarshalKey(ctx context.Context, key string, rawVal interface{}) error
	Get(key string) interface{}
}

// RootKey is a configuration key at the root of the hierarchy
type RootKey string

// Reset restores the configuration to the default values, discarding any overrides
func Reset() {
	viper.Reset()

	// Set defaults
	viper.SetDefault(string(Lang), "en")
	viper.SetDefault(string(LogLevel), "info")
	viper.SetDefault(string(LogColor), true)
	viper.SetDefault(string(LogUTC), false)
	viper.SetDefault(string(DebugPort), -1)
	viper.SetDefault(string(APIRequestTimeout), "120s")
	viper.SetDefault(string(APIRequestMaxTimeout), "10m")
	viper.SetDefault(string(APIMaxRequestSize), 10*1024*1024)
	viper.SetDefault(string(CorsAllowCredentials), true)
	viper.SetDefault(string(CorsAllowedHeaders), []string{"*"})
	viper.SetDefault(string(CorsAllowedMethods), []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete})
	viper.SetDefault(string(CorsAllowedOrigins), []string{"*"})
	viper.SetDefault(string(CorsEnabled), true)
	viper.SetDefault(string(CorsMaxAge), 600)
	viper.SetDefault(string(BadgeCanvasSize), 1000)
	viper.SetDefault(string(BadgeOutputDir), "output")
	viper.SetDefault(string(BadgeLogoPath), "assets/logo.png")
	viper.SetDefault(string(BadgeGatewayBaseURL), "https://ipfs.io/ipfs")
	viper.SetDefault(string(BadgeExternalURL), "https://songdrop.xyz/")
	viper.SetDefault(string(BadgeLicense), "CC BY-NC-SA 4.0")
	viper.SetDefault(string(PinningType), "pinata")
	viper.SetDefault(string(LedgerType), "hedera")
	viper.SetDefault(string(LedgerTokenSymbol), "DROP")
	viper.SetDefault(string(LedgerBurnBatchSize), 10)
	viper.SetDefault(string(MirrorType), "hedera")

	i18n.SetLang(GetString(Lang))
}

// ReadConfig initializes the config
func ReadConfig(cfgFile string) error {
	Reset()

	// Set precedence order for reading config location
	viper.SetEnvPrefix("badgeforge")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.SetConfigType("yaml")
	if cfgFile != "" {
		f, err := os.Open(cfgFile)
		if err == nil {
			defer f.Close()
			err = viper.ReadConfig(f)
		}
		return err
	}
	viper.SetConfigName("badgeforge.core")
	viper.AddConfigPath("/etc/badgeforge/")
	viper.AddConfigPath("$HOME/.badgeforge")
	viper.AddConfigPath(".")
	return viper.ReadInConfig()
}

var root = &configPrefix{
	keys: map[string]bool{}, // All keys go here, including those defined in sub prefixes
}

// ark adds a root key, used to define the keys that are used within the core
func ark(k string) RootKey {
	root.AddKnownKey(k)
	return RootKey(k)
}

// configPrefix is the main config structure passed to plugins, and used for root to wrap viper
type configPrefix struct {
	prefix string
	keys   map[string]bool
}

// NewPluginConfig creates a new plugin configuration object, at the specified prefix
func NewPluginConfig(prefix string) Prefix {
	if !strings.HasSuffix(prefix, ".") {
		prefix = prefix + "."
	}
	return &configPrefix{
		prefix: prefix,
		keys:   root.keys,
	}
}

func (c *configPrefix) prefixKey(k string) string {
	key := c.prefix + k
	if !c.keys[key] {
		panic(fmt.Sprintf("Undefined configuration key '%s'", key))
	}
	return key
}

func (c *configPrefix) SubPrefix(suffix string) Prefix {
	return &configPrefix{
		prefix: c.prefix + suffix + ".",
		keys:   root.keys,
	}
}

func (c *configPrefix) AddKnownKey(k string, defValue ...interface{}) {
	key := c.prefix + k
	if len(defValue) == 1 {
		viper.SetDefault(key, defValue[0])
	} else if len(defValue) > 0 {
		viper.SetDefault(key, defValue)
	}
	c.keys[key] = true
}

// Resolve gives the fully qualified path of a key
func (c *configPrefix) Resolve(key string) string {
	return c.prefix + key
}

// GetString gets a configuration string
func GetString(key RootKey) string {
	return root.GetString(string(key))
}
func (c *configPrefix) GetString(key string) string {
	return viper.GetString(c.prefixKey(key))
}

// GetStringSlice gets a configuration string array
func GetStringSlice(key RootKey) []string {
	return root.GetStringSlice(string(key))
}
func (c *configPrefix) GetStringSlice(key string) []string {
	return viper.GetStringSlice(c.prefixKey(key))
}

// GetBool gets a configuration bool
func GetBool(key RootKey) bool {
	return root.GetBool(string(key))
}
func (c *configPrefix) GetBool(key string) bool {
	return viper.GetBool(c.prefixKey(key))
}

// GetDuration gets a configuration time duration
func GetDuration(key RootKey) time.Duration {
	return root.GetDuration(string(key))
}
func (c *configPrefix) GetDuration(key string) time.Duration {
	return fDurationParse(viper.GetString(c.prefixKey(key)))
}

func fDurationParse(durationString string) time.Duration {
	duration, err := time.ParseDuration(durationString)
	if err != nil {
		// Try a plain number of milliseconds
		intVal, err := json.Number(durationString).Int64()
		if err == nil {
			duration = time.Duration(intVal) * time.Millisecond
		}
	}
	return duration
}

// GetUint gets a configuration uint
func GetUint(key RootKey) uint {
	return root.GetUint(string(key))
}
func (c *configPrefix) GetUint(key string) uint {
	return viper.GetUint(c.prefixKey(key))
}

// GetInt gets a configuration int
func GetInt(key RootKey) int {
	return root.GetInt(string(key))
}
func (c *configPrefix) GetInt(key string) int {
	return viper.GetInt(c.prefixKey(key))
}

// GetInt64 gets a configuration int64
func GetInt64(key RootKey) int64 {
	return root.GetInt64(string(key))
}
func (c *configPrefix) GetInt64(key string) int64 {
	return viper.GetInt64(c.prefixKey(key))
}

// GetObject gets a configuration map
func GetObject(key RootKey) map[string]interface{} {
	return root.GetObject(string(key))
}
func (c *configPrefix) GetObject(key string) map[string]interface{} {
	return viper.GetStringMap(c.prefixKey(key))
}

// Get gets a configuration in raw form
func Get(key RootKey) interface{} {
	return root.Get(string(key))
}
func (c *configPrefix) Get(key string) interface{} {
	return viper.Get(c.prefixKey(key))
}

// Set allows runtime setting of config (used in unit tests)
func Set(key RootKey, value interface{}) {
	root.Set(string(key), value)
}
func (c *configPrefix) Set(key string, value interface{}) {
	viper.Set(c.prefixKey(key), value)
}

// UnmarshalKey gets a configuration section into a struct
func UnmarshalKey(ctx context.Context, key RootKey, rawVal interface{}) error {
	return root.UnmarshalKey(ctx, string(key), rawVal)
}
func (c *configPrefix) UnmarshalKey(ctx context.Context, key string, rawVal interface{}) error {
	// Viper's unmarshal does not work with our json annotated config
	// structures, so we have to go from map to JSON, then to unmarshal
	var intermediate map[string]interface{}
	err := viper.UnmarshalKey(c.prefixKey(key), &intermediate)
	if err == nil {
		b, _ := json.Marshal(intermediate)
		err = json.Unmarshal(b, rawVal)
	}
	if err != nil {
		return i18n.WrapError(ctx, err, i18n.MsgConfigFailed, key)
	}
	return nil
}
