package cli

import (
	"crypto/tls"
	"log"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/frankonly/rollingmerkle/api/accumulator"
)

var apiClient pb.AccumulatorClient

// Client news or returns an accumulator client
func Client() pb.AccumulatorClient {
	if apiClient == nil {
		creds := insecure.NewCredentials()
		if secureConn {
			creds = credentials.NewTLS(&tls.Config{})
		}

		conn, err := grpc.Dial(endpoint, grpc.WithTransportCredentials(creds))
		if err != nil {
			log.Fatalf("failed to connect to %s: %v", endpoint, err)
		}

		apiClient = pb.NewAccumulatorClient(conn)
	}

	return apiClient
}
