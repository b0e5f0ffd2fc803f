package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	pb "github.com/frankonly/rollingmerkle/api/accumulator"
	"github.com/frankonly/rollingmerkle/crypto"
)

const rpcTimeout = time.Second * 3

var hashAlgo string

var (
	appendCmd = &cobra.Command{
		Use:   "append DIGEST",
		Short: "Append a leaf digest (0x-prefixed hex) and print the new root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			leaf, err := crypto.Decode(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
			defer cancel()

			root, err := Client().Append(ctx, &pb.Hash{Hash: leaf[:]})
			if err == nil {
				fmt.Println(crypto.Encode(root.Hash))
			}

			return err
		},
	}

	digestCmd = &cobra.Command{
		Use:   "digest",
		Short: "Print the current merkle root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
			defer cancel()

			root, err := Client().GetDigest(ctx, &pb.Empty{})
			if err == nil {
				fmt.Println(crypto.Encode(root.Hash))
			}

			return err
		},
	}

	snapshotCmd = &cobra.Command{
		Use:   "snapshot",
		Short: "Print the accumulator slot vector, one digest per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
			defer cancel()

			snapshot, err := Client().GetSnapshot(ctx, &pb.Empty{})
			if err != nil {
				return err
			}

			for _, slot := range snapshot.Slots {
				fmt.Println(crypto.Encode(slot))
			}

			return nil
		},
	}

	restoreCmd = &cobra.Command{
		Use:   "restore DIGEST...",
		Short: "Replace the server state with the given slot vector",
		Args:  cobra.MinimumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			slots := make([][]byte, len(args))
			for i, arg := range args {
				slot, err := crypto.Decode(arg)
				if err != nil {
					return err
				}
				slots[i] = slot[:]
			}

			ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
			defer cancel()

			root, err := Client().Restore(ctx, &pb.Snapshot{Slots: slots})
			if err == nil {
				fmt.Println(crypto.Encode(root.Hash))
			}

			return err
		},
	}

	hashCmd = &cobra.Command{
		Use:   "hash VALUE",
		Short: "Hash a value locally and print the leaf digest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch hashAlgo {
			case "sha256":
				var d crypto.SHA256
				fmt.Println(d.Hash([]byte(args[0])))
			case "sha3":
				var d crypto.SHA3
				fmt.Println(d.Hash([]byte(args[0])))
			default:
				return fmt.Errorf("unknown hash algorithm: %s", hashAlgo)
			}

			return nil
		},
	}
)

func init() {
	hashCmd.Flags().StringVar(&hashAlgo, "algo", "sha256", "hash family, sha256 or sha3")
}
