package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	enginewfrp "github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/engine/wfrp"
	interrors "github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/errors"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/handlers/tools"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/orchestrators/gametest"
	npcorch "github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/orchestrators/npc"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/pkg/clock"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/pkg/idgen"
	redisclient "github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/redis"
	npcrepo "github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/repositories/npc"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/repositories/rolls"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/rulebook"
)

const (
	transportStdio = "stdio"
	transportHTTP  = "http"
)

var (
	transport  string
	httpAddr   string
	redisAddr  string
	healthPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the MCP server",
	Long:  `Start the WFRP MCP server with NPC generation, session storage and characteristic test tools.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&transport, "transport", transportStdio, "MCP transport (stdio or http)")
	serverCmd.Flags().StringVar(&httpAddr, "http-addr", "localhost:8081", "listen address for the http transport")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "Redis address for the session store")
	serverCmd.Flags().IntVar(&healthPort, "health-port", 0, "gRPC health endpoint port (0 disables)")
}

func runServer(cmd *cobra.Command, args []string) error {
	if transport != transportStdio && transport != transportHTTP {
		return fmt.Errorf("transport %q is not supported", transport)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	server, err := buildServer(redisAddr)
	if err != nil {
		return err
	}

	if healthPort > 0 {
		stopHealth, err := startHealthServer(healthPort)
		if err != nil {
			return err
		}
		defer stopHealth()
	}

	slog.Info("mcp server starting",
		"transport", transport,
		"redis_addr", redisAddr)

	if transport == transportHTTP {
		return runHTTP(ctx, server, httpAddr)
	}

	err = server.Run(ctx, &mcp.StdioTransport{})
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	return err
}

// runHTTP serves the MCP server over the SDK's streamable HTTP transport and
// blocks until the context is cancelled or the listener fails.
func runHTTP(ctx context.Context, server *mcp.Server, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", handler)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down MCP HTTP server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
		return nil
	case err := <-errChan:
		return fmt.Errorf("HTTP server error: %w", err)
	}
}

// buildServer wires the full service stack behind the MCP tool surface
func buildServer(redisAddr string) (*mcp.Server, error) {
	client, err := redisclient.NewClient(redisAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, interrors.Unavailable(fmt.Sprintf("redis at %s is unreachable: %v", redisAddr, err))
	}

	repo, err := npcrepo.NewRedis(&npcrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create npc repository: %w", err)
	}

	rollsRepo, err := rolls.NewRedisRepository(&rolls.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create rolls repository: %w", err)
	}

	archetypes := rulebook.NewArchetypeCatalog()
	species := rulebook.NewSpeciesCatalog()

	eng, err := enginewfrp.NewAdapter(&enginewfrp.AdapterConfig{
		EventBus:   events.NewBus(),
		DiceRoller: dice.DefaultRoller,
		Archetypes: archetypes,
		Species:    species,
		Skills:     rulebook.NewSkillLinks(),
		Costs:      rulebook.NewCostSchedule(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	npcService, err := npcorch.NewOrchestrator(&npcorch.Config{
		Engine:      eng,
		Repository:  repo,
		Archetypes:  archetypes,
		Species:     species,
		Trappings:   rulebook.NewTrappingCatalog(),
		IDGenerator: idgen.NewUUID("npc"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create npc orchestrator: %w", err)
	}

	testService, err := gametest.NewOrchestrator(&gametest.Config{
		Engine:      eng,
		RollsRepo:   rollsRepo,
		IDGenerator: idgen.NewUUID("roll"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create test orchestrator: %w", err)
	}

	return tools.NewServer(&tools.Config{
		NPCService:  npcService,
		TestService: testService,
	})
}

// startHealthServer exposes a gRPC health + reflection endpoint for
// orchestration probes. The MCP surface itself runs on stdio, so probes
// need a separate listener.
func startHealthServer(port int) (func(), error) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen on health port: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(srv)

	go func() {
		log.Printf("health endpoint starting on port %d...", port)
		if err := srv.Serve(lis); err != nil {
			log.Printf("health endpoint stopped: %v", err)
		}
	}()

	return func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
		}
	}, nil
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	log.Printf("[%v] %s %v", level, msg, fields)
}
