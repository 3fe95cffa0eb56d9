package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/VictoriaMetrics/metrics"
	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/shopspring/decimal"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrTransferNotDecoded  = errors.New("token transfer log could not be decoded")
)

var (
	transferEventSig = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))
	transferValue    = abi.Arguments{{Type: mustNewType("uint256")}}

	lookupsTotal   = metrics.NewCounter("receiptchain_chain_lookups_total")
	lookupsCached  = metrics.NewCounter("receiptchain_chain_lookups_cached_total")
	lookupsMissing = metrics.NewCounter("receiptchain_chain_lookups_not_found_total")
)

type EthService struct {
	client        EthClient
	tokenContract common.Address
	cache         *xsync.MapOf[string, Transfer]
}

func NewEthService(ethClient EthClient, tokenContract common.Address) *EthService {
	return &EthService{
		client:        ethClient,
		tokenContract: tokenContract,
		cache:         xsync.NewMapOf[string, Transfer](),
	}
}

// LookupTransfer fetches the receipt and the transaction behind hashStr and works out how much
// was transferred. A Transfer log emitted by the token contract wins over the native value.
func (s *EthService) LookupTransfer(ctx context.Context, hashStr string) (Transfer, error) {
	lookupsTotal.Inc()

	key := strings.ToLower(hashStr)
	if transfer, ok := s.cache.Load(key); ok {
		lookupsCached.Inc()
		return transfer, nil
	}

	hash := common.HexToHash(hashStr)

	receipt, err := s.client.TransactionReceipt(ctx, hash)
	if err != nil {
		if errors.Is(err, goethereum.NotFound) {
			lookupsMissing.Inc()
			return Transfer{}, fmt.Errorf("%w: %s", ErrTransactionNotFound, hashStr)
		}
		return Transfer{}, fmt.Errorf("fetching receipt %q: %w", hashStr, err)
	}
	if receipt == nil {
		lookupsMissing.Inc()
		return Transfer{}, fmt.Errorf("%w: %s", ErrTransactionNotFound, hashStr)
	}

	tx, _, err := s.client.TransactionByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, goethereum.NotFound) {
			lookupsMissing.Inc()
			return Transfer{}, fmt.Errorf("%w: %s", ErrTransactionNotFound, hashStr)
		}
		return Transfer{}, fmt.Errorf("fetching transaction %q: %w", hashStr, err)
	}

	transfer, err := s.decodeTransfer(receipt, tx)
	if err != nil {
		return Transfer{}, fmt.Errorf("decoding transaction %q: %w", hashStr, err)
	}
	transfer.TransactionHash = hashStr

	s.cache.Store(key, transfer)

	return transfer, nil
}

func (s *EthService) decodeTransfer(receipt *types.Receipt, tx *types.Transaction) (Transfer, error) {
	if !s.hasTokenLog(receipt.Logs) {
		return Transfer{
			Amount:   scale(tx.Value(), NativeDecimals),
			Currency: NativeSymbol,
		}, nil
	}

	for _, log := range receipt.Logs {
		if log.Address != s.tokenContract || len(log.Topics) == 0 || log.Topics[0] != transferEventSig {
			continue
		}

		values, err := transferValue.Unpack(log.Data)
		if err != nil {
			return Transfer{}, fmt.Errorf("%w: %w", ErrTransferNotDecoded, err)
		}
		value, ok := values[0].(*big.Int)
		if !ok {
			return Transfer{}, fmt.Errorf("%w: unexpected value type %T", ErrTransferNotDecoded, values[0])
		}

		return Transfer{
			Amount:        scale(value, TokenDecimals),
			Currency:      TokenSymbol,
			TokenTransfer: true,
		}, nil
	}

	return Transfer{}, ErrTransferNotDecoded
}

func (s *EthService) hasTokenLog(logs []*types.Log) bool {
	for _, log := range logs {
		if log.Address == s.tokenContract {
			return true
		}
	}
	return false
}

func scale(value *big.Int, decimals int32) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(value, -decimals)
}

func mustNewType(t string) abi.Type {
	typ, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(err)
	}
	return typ
}
