package reader

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/tranvictor/uniquote/common"
)

const TIMEOUT time.Duration = 4 * time.Second

// OneNodeReader talks to one node. The connection is dialed on first use.
type OneNodeReader struct {
	nodeName  string
	nodeURL   string
	client    *rpc.Client
	ethClient *ethclient.Client
	mu        sync.Mutex
}

func NewOneNodeReader(name, url string) *OneNodeReader {
	return &OneNodeReader{
		nodeName: name,
		nodeURL:  url,
	}
}

func (onr *OneNodeReader) NodeName() string {
	return onr.nodeName
}

func (onr *OneNodeReader) NodeURL() string {
	return onr.nodeURL
}

func (onr *OneNodeReader) EthClient(ctx context.Context) (*ethclient.Client, error) {
	onr.mu.Lock()
	defer onr.mu.Unlock()
	if onr.ethClient != nil {
		return onr.ethClient, nil
	}
	client, err := rpc.DialContext(ctx, onr.NodeURL())
	if err != nil {
		return nil, fmt.Errorf("couldn't connect to %s: %w", onr.nodeName, err)
	}
	onr.client = client
	onr.ethClient = ethclient.NewClient(onr.client)
	return onr.ethClient, nil
}

func (onr *OneNodeReader) ReadContractToBytes(
	ctx context.Context,
	from string,
	caddr string,
	abi *abi.ABI,
	method string,
	args ...interface{},
) ([]byte, error) {
	data, err := abi.Pack(method, args...)
	if err != nil {
		return nil, err
	}

	timeout, cancel := context.WithTimeout(ctx, TIMEOUT)
	defer cancel()

	ethcli, err := onr.EthClient(timeout)
	if err != nil {
		return nil, err
	}

	contract := common.HexToAddress(caddr)
	return ethcli.CallContract(timeout, ethereum.CallMsg{
		From: common.HexToAddress(from),
		To:   &contract,
		Data: data,
	}, nil)
}

func (onr *OneNodeReader) CurrentBlock(ctx context.Context) (uint64, error) {
	timeout, cancel := context.WithTimeout(ctx, TIMEOUT)
	defer cancel()

	ethcli, err := onr.EthClient(timeout)
	if err != nil {
		return 0, err
	}
	return ethcli.BlockNumber(timeout)
}
