package money_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strictvalues/money"
)

func TestNewMoney(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		m, err := money.NewMoney[money.USD, uint32](1014)
		require.NoError(t, err)

		a, err := m.Amount()
		require.NoError(t, err)
		assert.Equal(t, uint32(1014), a.Subunits())
		assert.False(t, m.IsSpent())
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := money.NewMoney[money.USD, uint8](256)
		require.ErrorIs(t, err, money.ErrOverflow)
	})
}

func TestMoneyFromMainUnits(t *testing.T) {
	m, err := money.MoneyFromMainUnits[money.USD, uint32](10)
	require.NoError(t, err)

	a, err := m.Amount()
	require.NoError(t, err)
	assert.Equal(t, uint32(1000), a.Subunits())
}

func TestMoney_Amount(t *testing.T) {
	t.Run("borrow does not consume", func(t *testing.T) {
		m := money.MustNewMoney[money.USD, uint32](42)

		_, err := m.Amount()
		require.NoError(t, err)

		a, err := m.Amount()
		require.NoError(t, err)
		assert.Equal(t, uint32(42), a.Subunits())
	})

	t.Run("after consumption", func(t *testing.T) {
		m := money.MustNewMoney[money.USD, uint32](42)
		other := money.MustNewMoney[money.USD, uint32](1)

		_, err := m.Combine(other)
		require.NoError(t, err)

		_, err = m.Amount()
		require.ErrorIs(t, err, money.ErrConsumed)
	})
}

func TestMoney_Equal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		a := money.MustNewMoney[money.USD, uint32](47)
		b := money.MustNewMoney[money.USD, uint32](47)
		c := money.MustNewMoney[money.USD, uint32](11)

		eq, err := a.Equal(b)
		require.NoError(t, err)
		assert.True(t, eq)

		eq, err = a.Equal(c)
		require.NoError(t, err)
		assert.False(t, eq)

		// Comparing is a borrow, both operands stay live.
		assert.False(t, a.IsSpent())
		assert.False(t, b.IsSpent())
	})

	t.Run("consumed operand", func(t *testing.T) {
		a := money.MustNewMoney[money.USD, uint32](1)
		b := money.MustNewMoney[money.USD, uint32](1)

		_, err := a.Combine(b)
		require.NoError(t, err)

		fresh := money.MustNewMoney[money.USD, uint32](2)
		_, err = fresh.Equal(a)
		require.ErrorIs(t, err, money.ErrConsumed)
	})
}

func TestMoney_Combine(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		a := money.MustNewMoney[money.SEK, uint32](700)
		b := money.MustNewMoney[money.SEK, uint32](314)

		c, err := a.Combine(b)
		require.NoError(t, err)

		got, err := c.Amount()
		require.NoError(t, err)
		assert.Equal(t, uint32(1014), got.Subunits())

		// Both operands are consumed; only the result carries the funds.
		assert.True(t, a.IsSpent())
		assert.True(t, b.IsSpent())
		assert.False(t, c.IsSpent())
	})

	t.Run("reuse after combine", func(t *testing.T) {
		a := money.MustNewMoney[money.SEK, uint32](1)
		b := money.MustNewMoney[money.SEK, uint32](2)
		c := money.MustNewMoney[money.SEK, uint32](3)

		_, err := a.Combine(b)
		require.NoError(t, err)

		_, err = a.Combine(c)
		require.ErrorIs(t, err, money.ErrConsumed)

		// The live operand is left intact by the failed attempt.
		assert.False(t, c.IsSpent())
	})

	t.Run("with itself", func(t *testing.T) {
		a := money.MustNewMoney[money.SEK, uint32](5)

		_, err := a.Combine(a)
		require.ErrorIs(t, err, money.ErrConsumed)
		assert.False(t, a.IsSpent())
	})

	t.Run("overflow destroys both operands", func(t *testing.T) {
		a := money.MustNewMoney[money.SEK, uint8](200)
		b := money.MustNewMoney[money.SEK, uint8](100)

		_, err := a.Combine(b)
		require.ErrorIs(t, err, money.ErrOverflow)

		// An overflowing combination destroys the attempt rather than
		// succeeding partially: both operands stay consumed.
		assert.True(t, a.IsSpent())
		assert.True(t, b.IsSpent())
	})

	t.Run("at capacity", func(t *testing.T) {
		a := money.MustNewMoney[money.SEK, uint8](math.MaxUint8-1)
		b := money.MustNewMoney[money.SEK, uint8](1)

		c, err := a.Combine(b)
		require.NoError(t, err)

		got, err := c.Amount()
		require.NoError(t, err)
		assert.Equal(t, uint8(math.MaxUint8), got.Subunits())
	})
}

func TestPay(t *testing.T) {
	wallet := money.MustNewMoney[money.USD, uint32](1014)
	price := money.MustNewCost[money.USD, money.Price, uint32](1000)

	change, err := money.Pay(wallet, price)
	require.NoError(t, err)
	assert.True(t, wallet.IsSpent())

	back, ok := change.MoneyBack()
	require.True(t, ok)

	a, err := back.Amount()
	require.NoError(t, err)
	assert.Equal(t, uint32(14), a.Subunits())
	assert.True(t, change.LeftToPay().IsSettled())
}

func TestMoney_String(t *testing.T) {
	m := money.MustNewMoney[money.USD, uint32](1014)
	assert.Equal(t, "USD 10.14", m.String())

	_, err := m.Combine(money.MustNewMoney[money.USD, uint32](0))
	require.NoError(t, err)
	assert.Equal(t, "USD (consumed)", m.String())
}
