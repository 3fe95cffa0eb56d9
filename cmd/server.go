package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"receiptchain/internal/config"
	"receiptchain/internal/core"
	"receiptchain/internal/db"
	"receiptchain/internal/email"
	"receiptchain/internal/ethereum"
	"receiptchain/internal/export"
	"receiptchain/internal/http/handler"
	"receiptchain/internal/http/handler/middleware"
	"receiptchain/internal/http/payload"
	"receiptchain/internal/http/server"
	"receiptchain/internal/pub"
	"receiptchain/internal/repository"
	"receiptchain/pkg/jwt"
	"receiptchain/pkg/log"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

const (
	serviceName        = "receiptchain"
	eventRetention     = 7 * 24 * time.Hour
	chainDialTimeout   = 15 * time.Second
	migrateSeedTimeout = 30 * time.Second
)

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		log.NewZapLogger(serviceName, log.ParseLevel("")).Errorw("failed to create config", "error", err)
		return err
	}

	logger := log.NewZapLogger(serviceName, log.ParseLevel(config.LogLevel))
	defer logger.Sync()

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewReceiptRepository(dbConn)

	ctx, cancel := context.WithTimeout(context.Background(), migrateSeedTimeout)
	err = repo.MigrateAndSeed(ctx)
	cancel()
	if err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	if !common.IsHexAddress(config.TokenContract) {
		err = fmt.Errorf("invalid token contract address %q", config.TokenContract)
		logger.Errorw("failed to configure chain lookup", "error", err)
		return err
	}

	dialCtx, cancel := context.WithTimeout(context.Background(), chainDialTimeout)
	client, err := ethclient.DialContext(dialCtx, config.RPCURL)
	cancel()
	if err != nil {
		logger.Errorw("chain rpc connection failed", "error", err, "rpc_url", config.RPCURL)
		return err
	}
	defer client.Close()

	ethService := ethereum.NewEthService(client, common.HexToAddress(config.TokenContract))

	publisher, err := newPublisher(config.NatsURL, logger)
	if err != nil {
		logger.Errorw("failed to create event publisher", "error", err)
		return err
	}
	defer publisher.Close()

	mailer := email.NewEmailJSClient(email.EmailJSOpts{
		APIURL:     config.Email.APIURL,
		ServiceID:  config.Email.ServiceID,
		TemplateID: config.Email.TemplateID,
		PublicKey:  config.Email.PublicKey,
		PrivateKey: config.Email.PrivateKey,
	})

	receiptChain := core.NewReceiptChain(core.ReceiptChainOpts{
		Logs:          logger,
		Repo:          repo,
		JWTIssuer:     jwt.NewJWTService([]byte(config.JWTSecret)),
		Chain:         ethService,
		Renderer:      export.NewRenderer(export.RendererOpts{}),
		Mailer:        mailer,
		Publisher:     publisher,
		ExplorerTxURL: config.ExplorerTxURL,
	})

	// handler
	receiptHlr := handler.NewReceiptHandler(
		logger,
		payload.DecodeValidator{},
		receiptChain)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Authenticate, receiptHlr.HandleAuthenticate)
	mux.HandleFunc(handler.GetProfile, receiptHlr.HandleGetProfile)
	mux.HandleFunc(handler.UpdateProfile, receiptHlr.HandleUpdateProfile)
	mux.HandleFunc(handler.LookupTransaction, receiptHlr.HandleLookupTransaction)
	mux.HandleFunc(handler.CreateReceipt, receiptHlr.HandleCreateReceipt)
	mux.HandleFunc(handler.ListReceipts, receiptHlr.HandleListReceipts)
	mux.HandleFunc(handler.GetReceipt, receiptHlr.HandleGetReceipt)
	mux.HandleFunc(handler.PreviewReceipt, receiptHlr.HandlePreviewReceipt)
	mux.HandleFunc(handler.ExportReceipt, receiptHlr.HandleExportReceipt)
	mux.HandleFunc(handler.GetDashboard, receiptHlr.HandleDashboard)
	mux.HandleFunc(handler.Metrics, handler.HandleMetrics)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func newPublisher(natsURL string, logger *zap.SugaredLogger) (pub.Pub, error) {
	if natsURL == "" {
		logger.Infow("NATS_URL not set, receipt events are not published")
		return pub.NewNoopPub(), nil
	}

	return pub.NewJetStreamPub(pub.JetStreamOpts{
		Endpoint:        natsURL,
		PersistDuration: eventRetention,
		Logs:            logger,
	})
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		return sdErr
	}

	return errors.Join(err, sdErr)
}
