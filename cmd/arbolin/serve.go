package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/arbolin/internal/leaderboard"
	"github.com/vovakirdan/arbolin/internal/platform/tui"
)

var (
	flagAddr        string
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMemory      bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the leaderboard service",
	Long: `Run the leaderboard HTTP/WebSocket service and, with --ssh, an SSH
server where every connection gets its own game shell.

The board is kept in the local database so restarts keep it, unless
--memory is given.

Endpoints:
  GET  /api/leaderboard   top entries, best first
  POST /api/leaderboard   submit {"name", "score", "date"}
  GET  /ws                live snapshots (also accepted at /)

Examples:
  arbolin serve
  arbolin serve --addr :8080
  arbolin serve --ssh :2222 --host-key ./host_key

Players can then connect with:
  ssh localhost -p 2222`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Leaderboard listen address (default from config, :3000)")
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH listen address (empty = no SSH server)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file, relative to the working directory (generated if missing)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "SSH idle timeout in minutes")
	serveCmd.Flags().BoolVar(&flagMemory, "memory", false, "Keep the board in memory only")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	srvCfg := cfg.Server
	if flagAddr != "" {
		srvCfg.Addr = flagAddr
	}
	logger := newLogger("arbolin-serve")

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	var persister leaderboard.Persister
	if store != nil && !flagMemory {
		persister = store
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	board := leaderboard.NewBoard(srvCfg.Capacity, persister)
	if err := board.Load(ctx); err != nil {
		logger.Warn("could not load stored board", "error", err)
	}
	logger.Info("board ready", "entries", board.Len(), "persistent", persister != nil)

	g, ctx := errgroup.WithContext(ctx)

	server := leaderboard.NewServer(srvCfg, board, logger)
	g.Go(func() error {
		logger.Info("leaderboard listening", "addr", srvCfg.Addr)
		return server.Run(ctx)
	})

	if flagSSHAddr != "" {
		client, err := leaderboard.NewClient(localURL(srvCfg.Addr))
		if err != nil {
			return err
		}
		hostKey, err := hostKeyPath(flagHostKey, srvCfg.HostKeyPath)
		if err != nil {
			return err
		}
		sshSrv, err := tui.NewSSHServer(tui.SSHServerConfig{
			Address:     flagSSHAddr,
			HostKeyPath: hostKey,
			IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
			TickRate:    flagFPS,
			Tuning:      cfg.Game,
			Leaderboard: client,
		}, store, newLogger("arbolin-ssh"))
		if err != nil {
			return err
		}
		fmt.Printf("Connect with: ssh localhost -p %s\n", port(flagSSHAddr))
		g.Go(func() error {
			return sshSrv.ListenAndServe(ctx)
		})
	}

	fmt.Println("Press Ctrl+C to stop")
	return g.Wait()
}

// hostKeyPath picks the SSH host key location. A path given on the command
// line is relative to the working directory; the configured one is left for
// the SSH server to resolve against the home directory.
func hostKeyPath(flag, configured string) (string, error) {
	if flag == "" {
		return configured, nil
	}
	abs, err := filepath.Abs(flag)
	if err != nil {
		return "", fmt.Errorf("resolve host key %s: %w", flag, err)
	}
	return abs, nil
}

// localURL is the address SSH sessions use to reach the board in this
// process.
func localURL(addr string) string {
	return "http://127.0.0.1:" + port(addr)
}

func port(addr string) string {
	_, p, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return p
}
