package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
)

// SSHConfig describes the paired device reachable over SSH.
type SSHConfig struct {
	Host     string
	Port     int
	User     string
	KeyFile  string
	Password string
	Timeout  time.Duration
}

// SSHRunner runs commands on the paired device. Every Run dials a fresh
// connection and opens a single session, so a stuck command cannot poison
// later requests.
type SSHRunner struct {
	addr   string
	config *ssh.ClientConfig
}

// NewSSHRunner builds a runner from the remote configuration. At least one
// of KeyFile or Password must be set.
func NewSSHRunner(cfg SSHConfig) (*SSHRunner, error) {
	if cfg.Host == "" {
		return nil, errors.New("remote host is required")
	}

	var auth []ssh.AuthMethod
	if cfg.KeyFile != "" {
		key, err := os.ReadFile(cfg.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("read key file: %w", err)
		}
		signer, err := ssh.ParsePrivateKey(key)
		if err != nil {
			return nil, fmt.Errorf("parse private key: %w", err)
		}
		auth = append(auth, ssh.PublicKeys(signer))
	}
	if cfg.Password != "" {
		auth = append(auth, ssh.Password(cfg.Password))
	}
	if len(auth) == 0 {
		return nil, errors.New("no SSH authentication configured (set key_file or password)")
	}

	user := cfg.User
	if user == "" {
		user = "root"
	}
	port := cfg.Port
	if port == 0 {
		port = 22
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &SSHRunner{
		addr: net.JoinHostPort(cfg.Host, strconv.Itoa(port)),
		config: &ssh.ClientConfig{
			User: user,
			Auth: auth,
			// The paired device is a lab board provisioned alongside this
			// service; its host key is not tracked.
			HostKeyCallback: ssh.InsecureIgnoreHostKey(),
			Timeout:         timeout,
		},
	}, nil
}

// Run executes one command in its own session and returns trimmed stdout.
// Cancelling ctx tears down the connection, which unblocks the session.
func (r *SSHRunner) Run(ctx context.Context, command string) (string, error) {
	client, err := ssh.Dial("tcp", r.addr, r.config)
	if err != nil {
		return "", fmt.Errorf("dial %s: %w", r.addr, err)
	}
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		return "", fmt.Errorf("open session: %w", err)
	}
	defer session.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			client.Close()
		case <-done:
		}
	}()

	out, err := session.Output(command)
	output := strings.TrimSpace(string(out))
	if ctxErr := ctx.Err(); ctxErr != nil {
		return output, fmt.Errorf("remote command interrupted: %w", ctxErr)
	}
	if err != nil {
		return output, fmt.Errorf("run %q: %w", command, err)
	}
	return output, nil
}
