package ais2dw12

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mklimuk/ais2dw12/sim"
)

type compositeCase struct {
	name   string
	first  Register
	second Register
	// registers written, in order
	writes [2]Register
	set    func(ctx context.Context, d *Dev) error
}

var compositeCases = []compositeCase{
	{
		name: "data rate", first: RegCtrl1, second: RegCtrl3,
		writes: [2]Register{RegCtrl1, RegCtrl3},
		set:    func(ctx context.Context, d *Dev) error { return d.SetDataRate(ctx, DataRateSoftwareTrigger) },
	},
	{
		name: "filter path", first: RegCtrl6, second: RegCtrl7,
		writes: [2]Register{RegCtrl6, RegCtrl7},
		set:    func(ctx context.Context, d *Dev) error { return d.SetFilterPath(ctx, FilterPathHighPass) },
	},
	{
		name: "activity mode", first: RegWakeUpThs, second: RegWakeUpDur,
		writes: [2]Register{RegWakeUpThs, RegWakeUpDur},
		set:    func(ctx context.Context, d *Dev) error { return d.SetActivityMode(ctx, ActivityStationary) },
	},
	{
		name: "free-fall duration", first: RegWakeUpDur, second: RegFreeFall,
		writes: [2]Register{RegWakeUpDur, RegFreeFall},
		set:    func(ctx context.Context, d *Dev) error { return d.SetFreeFallDuration(ctx, 0x2A) },
	},
	{
		name: "int1 route", first: RegCtrl5Int2, second: RegCtrl7,
		writes: [2]Register{RegCtrl4Int1, RegCtrl7},
		set:    func(ctx context.Context, d *Dev) error { return d.SetInt1Route(ctx, Int1Route{WakeUp: true}) },
	},
	{
		name: "int2 route", first: RegCtrl4Int1, second: RegCtrl7,
		writes: [2]Register{RegCtrl5Int2, RegCtrl7},
		set:    func(ctx context.Context, d *Dev) error { return d.SetInt2Route(ctx, Int2Route{SleepChange: true}) },
	},
}

func TestCompositeSetOrder(t *testing.T) {
	ctx := context.Background()
	for _, tt := range compositeCases {
		t.Run(tt.name, func(t *testing.T) {
			s := sim.New()
			require.NoError(t, tt.set(ctx, New(s)))
			calls := s.Calls()
			require.Len(t, calls, 4)
			assert.Equal(t, sim.OpRead, calls[0].Op)
			assert.Equal(t, byte(tt.first), calls[0].Reg)
			assert.Equal(t, sim.OpRead, calls[1].Op)
			assert.Equal(t, byte(tt.second), calls[1].Reg)
			assert.Equal(t, sim.OpWrite, calls[2].Op)
			assert.Equal(t, byte(tt.writes[0]), calls[2].Reg)
			assert.Equal(t, sim.OpWrite, calls[3].Op)
			assert.Equal(t, byte(tt.writes[1]), calls[3].Reg)
		})
	}
}

func TestCompositeReadFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("read failed")
	for _, tt := range compositeCases {
		for _, failing := range []Register{tt.first, tt.second} {
			t.Run(tt.name+" "+failing.String(), func(t *testing.T) {
				s := sim.New()
				s.FailRead(byte(failing), boom)
				err := tt.set(ctx, New(s))
				assert.ErrorIs(t, err, boom)
				assert.Empty(t, s.Writes())
			})
		}
	}
}

func TestCompositeFirstWriteFailure(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("write failed")
	for _, tt := range compositeCases {
		t.Run(tt.name, func(t *testing.T) {
			s := sim.New()
			s.FailWrite(byte(tt.writes[0]), boom)
			err := tt.set(ctx, New(s))
			assert.ErrorIs(t, err, boom)
			writes := s.Writes()
			require.Len(t, writes, 1, "second register must not be written")
			assert.Equal(t, byte(tt.writes[0]), writes[0].Reg)
		})
	}
}

func TestCompositeSecondWriteFailureKeepsFirst(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("write failed")
	s := sim.New()
	s.FailWrite(byte(RegCtrl3), boom)
	err := New(s).SetDataRate(ctx, DataRateSoftwareTrigger)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, byte(0x20), s.Register(byte(RegCtrl1)), "CTRL1 is already committed")
	assert.Equal(t, byte(0x00), s.Register(byte(RegCtrl3)))
}

func TestCompositeGetNeedsBothReads(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("read failed")
	m := &MockTransport{}
	m.On("ReadRegister", ctx, byte(RegCtrl6), mock.Anything).Return([]byte{0x08}, nil).Once()
	m.On("ReadRegister", ctx, byte(RegCtrl7), mock.Anything).Return(nil, boom).Once()

	_, err := New(m).GetFilterPath(ctx)
	assert.ErrorIs(t, err, boom)
	m.AssertExpectations(t)
	m.AssertNotCalled(t, "WriteRegister", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompositeSetValues(t *testing.T) {
	ctx := context.Background()
	m := &MockTransport{}
	calls := []*mock.Call{
		m.On("ReadRegister", ctx, byte(RegWakeUpDur), mock.Anything).Return([]byte{0x0F}, nil).Once(),
		m.On("ReadRegister", ctx, byte(RegFreeFall), mock.Anything).Return([]byte{0x05}, nil).Once(),
		m.On("WriteRegister", ctx, byte(RegWakeUpDur), []byte{0x8F}).Return(nil).Once(),
		m.On("WriteRegister", ctx, byte(RegFreeFall), []byte{0x55}).Return(nil).Once(),
	}
	mock.InOrder(calls...)

	err := New(m).SetFreeFallDuration(ctx, 0x2A)
	assert.NoError(t, err)
	m.AssertExpectations(t)
}

func TestCompositeGetKeys(t *testing.T) {
	ctx := context.Background()
	s := sim.New(
		sim.WithRegister(byte(RegCtrl1), 0x22),
		sim.WithRegister(byte(RegCtrl3), 0x01),
		sim.WithRegister(byte(RegCtrl6), 0x08),
		sim.WithRegister(byte(RegWakeUpThs), 0x40),
		sim.WithRegister(byte(RegWakeUpDur), 0x90),
		sim.WithRegister(byte(RegFreeFall), 0x28),
	)
	dev := New(s)

	rate, err := dev.GetDataRate(ctx)
	require.NoError(t, err)
	assert.Equal(t, DataRatePinTrigger, rate)

	path, err := dev.GetFilterPath(ctx)
	require.NoError(t, err)
	assert.Equal(t, FilterPathHighPass, path)

	mode, err := dev.GetActivityMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, ActivityStationary, mode)

	dur, err := dev.GetFreeFallDuration(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x25), dur)
}
