package main

import (
	"errors"
	"flag"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/frankonly/rollingmerkle/api"
	pb "github.com/frankonly/rollingmerkle/api/accumulator"
	"github.com/frankonly/rollingmerkle/crypto"
	"github.com/frankonly/rollingmerkle/data"
	"github.com/frankonly/rollingmerkle/log"
	"github.com/frankonly/rollingmerkle/merkle"
	"github.com/frankonly/rollingmerkle/storage"
)

var (
	tls      = flag.Bool("tls", false, "Connection uses TLS if true, else plain TCP")
	certFile = flag.String("cert_file", "", "The TLS cert file")
	keyFile  = flag.String("key_file", "", "The TLS key file")
	dbDir    = flag.String("db_dir", "accumulator.db", "The snapshot DB directory")
	hashAlgo = flag.String("hash", "sha256", "Hash family, sha256 or sha3")
	port     = flag.Int("port", 10000, "The server port")
)

func main() {
	flag.Parse()
	logger := log.New()
	defer func() { _ = logger.Sync() }()

	switch *hashAlgo {
	case "sha256":
		run[crypto.SHA256]()
	case "sha3":
		run[crypto.SHA3]()
	default:
		logger.Fatalf("unknown hash algorithm: %s", *hashAlgo)
	}
}

func run[D merkle.Digest[D]]() {
	logger := log.New()

	db, err := storage.NewLevelDB(data.Path(*dbDir))
	if err != nil {
		logger.Fatalf("failed to open snapshot db: %v", err)
	}
	defer func() { _ = db.Close() }()

	accumulator, err := restore[D](db)
	if err != nil {
		logger.Fatalf("failed to restore accumulator: %v", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", *port))
	if err != nil {
		logger.Fatalf("failed to listen: %v", err)
	}

	var opts []grpc.ServerOption
	if *tls {
		creds, err := credentials.NewServerTLSFromFile(*certFile, *keyFile)
		if err != nil {
			logger.Fatalf("failed to load credentials: %v", err)
		}
		opts = append(opts, grpc.Creds(creds))
	}

	grpcServer := grpc.NewServer(opts...)
	pb.RegisterAccumulatorServer(grpcServer, api.NewServer(accumulator, db))

	logger.Infow("serving", "port", *port, "hash", *hashAlgo, "levels", accumulator.Size())
	if err := grpcServer.Serve(lis); err != nil {
		logger.Errorf("server stopped: %v", err)
	}
}

// restore rebuilds the accumulator from a stored snapshot when one exists.
// The root starts over at zero after a restart; it catches up on the next
// append.
func restore[D merkle.Digest[D]](db storage.KvStore) (*merkle.Accumulator[D], error) {
	slots, err := storage.LoadSnapshot[D](db)
	if errors.Is(err, storage.ErrNotFound) {
		return merkle.NewAccumulator[D](), nil
	}
	if err != nil {
		return nil, err
	}

	return merkle.Load(slots), nil
}
