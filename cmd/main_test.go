package main

import (
	"bytes"
	"flag"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	assert.Equal(t, "config.env", configPath)
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	assert.Equal(t, "myconfig.env", configPath)
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-01-15"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout
	output := buf.String()

	assert.True(t, strings.Contains(output, "v1.0.0"))
	assert.True(t, strings.Contains(output, "abcd1234"))
	assert.True(t, strings.Contains(output, "2026-01-15"))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaGroupID,
		gwHost, gwPort, rateSpread, rateCacheTTLSecond,
		currentAccountURL, forexAccountURL, accountMaxRetries,
		sagaWorkers, sagaQueueSize, sagaLockTTLSecond,
		err := parseConfig("does-not-exist.env")

	assert.NoError(t, err)
	assert.Equal(t, "localhost", appHost)
	assert.Equal(t, "8080", appPort)
	assert.Equal(t, "info", logLevel)
	assert.Equal(t, "localhost", pgHost)
	assert.Equal(t, 5432, pgPort)
	assert.Equal(t, "user", pgUser)
	assert.Equal(t, "password", pgPassword)
	assert.Equal(t, "exchange", pgDB)
	assert.Equal(t, 16, pgMaxOpenConns)
	assert.Equal(t, 8, pgMaxIdleConns)
	assert.Equal(t, "localhost", redisHost)
	assert.Equal(t, 6379, redisPort)
	assert.Equal(t, 0, redisDB)
	assert.Equal(t, "", redisPassword)
	assert.Equal(t, 10, redisPoolSize)
	assert.Equal(t, 2, redisMinIdleConns)
	assert.Equal(t, "localhost:9092", kafkaBrokers)
	assert.Equal(t, "gw-exchange-saga", kafkaGroupID)
	assert.Equal(t, "localhost", gwHost)
	assert.Equal(t, "50051", gwPort)
	assert.Equal(t, "0.005", rateSpread)
	assert.Equal(t, 60, rateCacheTTLSecond)
	assert.Equal(t, "http://localhost:8081", currentAccountURL)
	assert.Equal(t, "http://localhost:8082", forexAccountURL)
	assert.Equal(t, 2, accountMaxRetries)
	assert.Equal(t, 8, sagaWorkers)
	assert.Equal(t, 256, sagaQueueSize)
	assert.Equal(t, 30, sagaLockTTLSecond)
}

func TestParseConfig_FromEnv(t *testing.T) {
	resetEnv()
	t.Setenv("APP_PORT", "9090")
	t.Setenv("POSTGRES_DB", "saga_test")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("CURRENT_ACCOUNT_URL", "http://current.internal:8080")
	t.Setenv("FOREX_ACCOUNT_URL", "http://forex.internal:8080")
	t.Setenv("ACCOUNT_CLIENT_MAX_RETRIES", "5")
	t.Setenv("SAGA_WORKERS", "32")
	t.Setenv("RATE_SPREAD", "0.01")

	_, appPort, _,
		_, _, _, _, pgDB,
		_, _,
		_, _, _, _,
		_, _,
		kafkaBrokers, _,
		_, _, rateSpread, _,
		currentAccountURL, forexAccountURL, accountMaxRetries,
		sagaWorkers, _, _,
		err := parseConfig("does-not-exist.env")

	assert.NoError(t, err)
	assert.Equal(t, "9090", appPort)
	assert.Equal(t, "saga_test", pgDB)
	assert.Equal(t, "kafka-1:9092,kafka-2:9092", kafkaBrokers)
	assert.Equal(t, "http://current.internal:8080", currentAccountURL)
	assert.Equal(t, "http://forex.internal:8080", forexAccountURL)
	assert.Equal(t, 5, accountMaxRetries)
	assert.Equal(t, 32, sagaWorkers)
	assert.Equal(t, "0.01", rateSpread)
}

func TestParseConfig_InvalidInt(t *testing.T) {
	resetEnv()
	t.Setenv("SAGA_WORKERS", "many")

	_, _, _,
		_, _, _, _, _,
		_, _,
		_, _, _, _,
		_, _,
		_, _,
		_, _, _, _,
		_, _, _,
		_, _, _,
		err := parseConfig("does-not-exist.env")

	assert.Error(t, err)
}
