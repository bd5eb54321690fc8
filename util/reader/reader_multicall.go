package reader

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	uqcommon "github.com/tranvictor/uniquote/common"
)

// MCOneResultHandler is called with the unpacked result of one call once the
// whole batch succeeded.
type MCOneResultHandler func(result interface{}) error

type registeredCall struct {
	result interface{}
	hook   MCOneResultHandler
	caddr  string
	abi    *abi.ABI
	method string
	args   []interface{}
}

// MultipleCall batches contract reads into one Multicall3 aggregate call.
// Aggregate reverts as a whole when any of the calls reverts.
type MultipleCall struct {
	r        ContractReader
	contract string
	mcABI    *abi.ABI
	calls    []registeredCall
}

func NewMultiCall(r ContractReader, mcContract string) *MultipleCall {
	return &MultipleCall{
		r:        r,
		contract: mcContract,
		mcABI:    uqcommon.GetMultiCallABI(),
	}
}

// RegisterWithHook queues method on caddr. The output is unpacked into result
// and hook, when not nil, runs after it.
func (mc *MultipleCall) RegisterWithHook(
	result interface{},
	hook MCOneResultHandler,
	caddr string,
	abi *abi.ABI,
	method string,
	args ...interface{},
) *MultipleCall {
	mc.calls = append(mc.calls, registeredCall{
		result: result,
		hook:   hook,
		caddr:  caddr,
		abi:    abi,
		method: method,
		args:   args,
	})
	return mc
}

func (mc *MultipleCall) Register(
	result interface{},
	caddr string,
	abi *abi.ABI,
	method string,
	args ...interface{},
) *MultipleCall {
	return mc.RegisterWithHook(result, nil, caddr, abi, method, args...)
}

func (mc *MultipleCall) Len() int {
	return len(mc.calls)
}

type multicallres struct {
	BlockNumber *big.Int
	ReturnData  [][]byte
}

// call mirrors the Multicall3 Call struct, field names matter to the abi
// encoder.
type call struct {
	Target   common.Address
	CallData []byte
}

func (mc *MultipleCall) aggregate(ctx context.Context) (uint64, error) {
	calls := make([]call, 0, len(mc.calls))
	for i, c := range mc.calls {
		data, err := c.abi.Pack(c.method, c.args...)
		if err != nil {
			return 0, fmt.Errorf("packing call index %d (%s.%s) failed: %w", i, c.caddr, c.method, err)
		}
		calls = append(calls, call{Target: uqcommon.HexToAddress(c.caddr), CallData: data})
	}

	res := multicallres{}
	if err := ReadContractWithABI(ctx, mc.r, &res, mc.contract, mc.mcABI, "aggregate", calls); err != nil {
		return 0, fmt.Errorf("reading mc.aggregate failed: %w", err)
	}
	if len(res.ReturnData) != len(mc.calls) {
		return 0, fmt.Errorf("mc.aggregate returned %d results for %d calls", len(res.ReturnData), len(mc.calls))
	}

	for i, c := range mc.calls {
		if err := c.abi.UnpackIntoInterface(c.result, c.method, res.ReturnData[i]); err != nil {
			return 0, fmt.Errorf("unpacking call index %d (%s.%s) failed: %w", i, c.caddr, c.method, err)
		}
	}
	return res.BlockNumber.Uint64(), nil
}

// Do runs every registered call in one aggregate call, unpacks the results
// then runs the hooks in registration order. It returns the block number the
// calls were executed at.
func (mc *MultipleCall) Do(ctx context.Context) (uint64, error) {
	if len(mc.calls) == 0 {
		return 0, nil
	}
	block, err := mc.aggregate(ctx)
	if err != nil {
		return 0, fmt.Errorf("calling mc contract failed: %w", err)
	}

	for i, c := range mc.calls {
		if c.hook == nil {
			continue
		}
		if err := c.hook(c.result); err != nil {
			return 0, fmt.Errorf("calling hook at index %d failed: %w", i, err)
		}
	}
	return block, nil
}
