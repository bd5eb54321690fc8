// Package reader reads contract state from a set of equivalent nodes. Every
// call is sent to all nodes and the first successful answer wins.
package reader

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var DEFAULT_ADDRESS string = "0x0000000000000000000000000000000000000000"

var ErrNoNodes = errors.New("no nodes configured")

type EthReader struct {
	nodes []EthereumNode
}

// NewEthReaderGeneric builds a reader over nodes, a map of node name to
// json-rpc url.
func NewEthReaderGeneric(nodes map[string]string) *EthReader {
	names := make([]string, 0, len(nodes))
	for name := range nodes {
		names = append(names, name)
	}
	sort.Strings(names)

	ns := make([]EthereumNode, 0, len(nodes))
	for _, name := range names {
		ns = append(ns, NewOneNodeReader(name, nodes[name]))
	}
	return NewEthReaderWithNodes(ns...)
}

func NewEthReaderWithNodes(nodes ...EthereumNode) *EthReader {
	return &EthReader{nodes: nodes}
}

func (er *EthReader) Nodes() []EthereumNode {
	return er.nodes
}

func wrapError(e error, name string) error {
	if e == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, e)
}

type readContractToBytesResponse struct {
	Data  []byte
	Error error
}

func (er *EthReader) ReadContractToBytes(
	ctx context.Context,
	caddr string,
	abi *abi.ABI,
	method string,
	args ...interface{},
) ([]byte, error) {
	if len(er.nodes) == 0 {
		return nil, ErrNoNodes
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	resCh := make(chan readContractToBytesResponse, len(er.nodes))
	for i := range er.nodes {
		n := er.nodes[i]
		go func() {
			data, err := n.ReadContractToBytes(ctx, DEFAULT_ADDRESS, caddr, abi, method, args...)
			resCh <- readContractToBytesResponse{
				Data:  data,
				Error: wrapError(err, n.NodeName()),
			}
		}()
	}
	errs := []error{}
	for i := 0; i < len(er.nodes); i++ {
		result := <-resCh
		if result.Error == nil {
			return result.Data, result.Error
		}
		errs = append(errs, result.Error)
	}
	return nil, fmt.Errorf("couldn't read from any nodes: %w", errors.Join(errs...))
}

type getBlockResponse struct {
	Block uint64
	Error error
}

func (er *EthReader) CurrentBlock(ctx context.Context) (uint64, error) {
	if len(er.nodes) == 0 {
		return 0, ErrNoNodes
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	resCh := make(chan getBlockResponse, len(er.nodes))
	for i := range er.nodes {
		n := er.nodes[i]
		go func() {
			block, err := n.CurrentBlock(ctx)
			resCh <- getBlockResponse{
				Block: block,
				Error: wrapError(err, n.NodeName()),
			}
		}()
	}
	errs := []error{}
	for i := 0; i < len(er.nodes); i++ {
		result := <-resCh
		if result.Error == nil {
			return result.Block, result.Error
		}
		errs = append(errs, result.Error)
	}
	return 0, fmt.Errorf("couldn't read from any nodes: %w", errors.Join(errs...))
}
