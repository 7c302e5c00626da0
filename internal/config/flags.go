package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a bridge endpoint address in format [host]:[port]
//	-request-timeout bridge request timeout (e.g., "30s", "1m")
//	-snapshot-interval session snapshot interval for watch mode (e.g., "5s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var bridgeAddress NetAddress
	var requestTimeout time.Duration
	var snapshotInterval time.Duration
	var jsonConfigPath string

	flag.Var(&bridgeAddress, "a", "Bridge endpoint address host:port")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Bridge request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&snapshotInterval, "snapshot-interval", 0, "Snapshot interval for watch mode (e.g., 5s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Bridge: Bridge{
			Address:        bridgeAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SnapshotInterval: snapshotInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress, or an
// empty string when neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
