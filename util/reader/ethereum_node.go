package reader

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// EthereumNode is a single json-rpc endpoint.
type EthereumNode interface {
	NodeName() string
	NodeURL() string
	ReadContractToBytes(
		ctx context.Context,
		from string,
		caddr string,
		abi *abi.ABI,
		method string,
		args ...interface{},
	) ([]byte, error)
	CurrentBlock(ctx context.Context) (uint64, error)
}

// ContractReader performs read only contract calls at the latest block.
type ContractReader interface {
	ReadContractToBytes(
		ctx context.Context,
		caddr string,
		abi *abi.ABI,
		method string,
		args ...interface{},
	) ([]byte, error)
}

// ReadContractWithABI calls method on caddr through r and unpacks the
// returned data into result.
func ReadContractWithABI(
	ctx context.Context,
	r ContractReader,
	result interface{},
	caddr string,
	abi *abi.ABI,
	method string,
	args ...interface{},
) error {
	responseBytes, err := r.ReadContractToBytes(ctx, caddr, abi, method, args...)
	if err != nil {
		return err
	}
	return abi.UnpackIntoInterface(result, method, responseBytes)
}
