package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(tt.key, tt.envValue)
			} else {
				os.Unsetenv(tt.key)
			}

			result := GetEnvWithDefault(tt.key, tt.defaultValue)

			if result != tt.expected {
				t.Errorf("GetEnvWithDefault() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestGetEnvAsType(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BAD_INT", "forty-two")

	assert.True(t, GetEnvAsType("TEST_BOOL", false))
	assert.Equal(t, 42, GetEnvAsType("TEST_INT", 0))
	assert.Equal(t, 7, GetEnvAsType("TEST_BAD_INT", 7))
	assert.Equal(t, "fallback", GetEnvAsType("TEST_UNSET_STRING", "fallback"))
}

func TestLoadConfig(t *testing.T) {
	vars := []string{
		"APP_PORT", "APP_HOST", "LOG_LEVEL", "JWT_SECRET", "AUTH_ENABLED",
		"DB_DRIVER", "DB_PATH", "DB_PORT", "SEED_ON_START", "CORS_ALLOWED_ORIGINS",
	}
	cleanupTestEnv := func() {
		for _, v := range vars {
			os.Unsetenv(v)
		}
	}

	t.Run("successful config load with all env vars", func(t *testing.T) {
		cleanupTestEnv()
		t.Setenv("APP_PORT", "9000")
		t.Setenv("APP_HOST", "0.0.0.0")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("JWT_SECRET", "super_secret_jwt_key")
		t.Setenv("AUTH_ENABLED", "true")
		t.Setenv("DB_DRIVER", "postgres")
		t.Setenv("SEED_ON_START", "true")
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 9000, config.Port)
		assert.Equal(t, "0.0.0.0", config.Host)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, "postgres", config.DBDriver)
		assert.Equal(t, "5432", config.DBPort)
		assert.True(t, config.AuthEnabled)
		assert.True(t, config.SeedOnStart)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, config.CORSAllowedOrigins)
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		cleanupTestEnv()
		t.Setenv("APP_PORT", "not_a_number")

		config, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should fail with unsupported driver", func(t *testing.T) {
		cleanupTestEnv()
		t.Setenv("DB_DRIVER", "oracle")

		config, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should require a secret when auth is enabled", func(t *testing.T) {
		cleanupTestEnv()
		t.Setenv("AUTH_ENABLED", "true")

		_, err := LoadConfig()

		assert.Error(t, err)
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		cleanupTestEnv()

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 8080, config.Port)
		assert.Equal(t, "localhost", config.Host)
		assert.Equal(t, "info", config.LogLevel)
		assert.Equal(t, "sqlite", config.DBDriver)
		assert.Equal(t, "pizza.sqlite", config.DBPath)
		assert.False(t, config.AuthEnabled)
		assert.False(t, config.SeedOnStart)
		assert.Equal(t, []string{"*"}, config.CORSAllowedOrigins)
	})
}

func TestConfigStringMasksSecrets(t *testing.T) {
	c := &Config{DBPassword: "hunter2", JWTSecret: "topsecret"}

	s := c.String()

	assert.NotContains(t, s, "hunter2")
	assert.NotContains(t, s, "topsecret")
	assert.Contains(t, s, "[REDACTED]")
}

func TestLevelForEnvironment(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, LevelForEnvironment("development"))
	assert.Equal(t, logrus.ErrorLevel, LevelForEnvironment("production"))
	assert.Equal(t, logrus.InfoLevel, LevelForEnvironment("staging"))
}

func BenchmarkGetEnvWithDefault(b *testing.B) {
	os.Setenv("BENCH_KEY", "test_value")
	defer os.Unsetenv("BENCH_KEY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}

func TestConfigDatabase(t *testing.T) {
	c := &Config{DBDriver: "mysql", DBHost: "db", DBPort: "3306", DBUser: "pizza", DBPassword: "pw", DBName: "menu"}

	dbConfig := c.Database()

	assert.Equal(t, "mysql", dbConfig.Driver)
	assert.Equal(t, "pizza:pw@tcp(db:3306)/menu?charset=utf8mb4&parseTime=True&loc=UTC", dbConfig.DSN())
}
