package realtime

import (
	"errors"
	"testing"

	"go.uber.org/zap"
)

type fakeSink struct {
	frames []Frame
	fail   bool
	closed bool
}

func (s *fakeSink) Send(frame Frame) error {
	if s.fail {
		return errors.New("transporte quebrado")
	}
	s.frames = append(s.frames, frame)
	return nil
}

func (s *fakeSink) Close() error {
	s.closed = true
	return nil
}

func TestBroadcastTodosDeliversToEveryone(t *testing.T) {
	t.Parallel()
	b := NewBroadcaster(zap.NewNop())

	staff := &fakeSink{}
	table := &fakeSink{}
	sessao := "s-1"
	b.Conectar(NewCliente(staff, nil))
	b.Conectar(NewCliente(table, &sessao))

	b.BroadcastTodos(Frame{Tipo: FrameCardapioAtualizado})

	if len(staff.frames) != 1 || len(table.frames) != 1 {
		t.Fatalf("frames = %d/%d, want 1/1", len(staff.frames), len(table.frames))
	}
	if staff.frames[0].Tipo != FrameCardapioAtualizado {
		t.Errorf("Tipo = %q, want %q", staff.frames[0].Tipo, FrameCardapioAtualizado)
	}
}

func TestBroadcastSessaoScopesDelivery(t *testing.T) {
	t.Parallel()
	b := NewBroadcaster(zap.NewNop())

	s1, s2 := "s-1", "s-2"
	alvo := &fakeSink{}
	outra := &fakeSink{}
	semSessao := &fakeSink{}
	b.Conectar(NewCliente(alvo, &s1))
	b.Conectar(NewCliente(outra, &s2))
	b.Conectar(NewCliente(semSessao, nil))

	b.BroadcastSessao(s1, Frame{Tipo: FrameContaAtualizada})

	if len(alvo.frames) != 1 {
		t.Fatalf("target got %d frames, want 1", len(alvo.frames))
	}
	if len(outra.frames) != 0 || len(semSessao.frames) != 0 {
		t.Fatalf("unscoped observers received session-scoped frames: %d/%d", len(outra.frames), len(semSessao.frames))
	}
}

func TestBroadcastSkipsBrokenTransport(t *testing.T) {
	t.Parallel()
	b := NewBroadcaster(zap.NewNop())

	quebrado := &fakeSink{fail: true}
	saudavel := &fakeSink{}
	b.Conectar(NewCliente(quebrado, nil))
	b.Conectar(NewCliente(saudavel, nil))

	b.BroadcastTodos(Frame{Tipo: FrameChamadoGarcom})

	if len(saudavel.frames) != 1 {
		t.Fatalf("healthy client got %d frames, want 1", len(saudavel.frames))
	}
	if !quebrado.closed {
		t.Error("broken client was not dropped")
	}
	if got := b.Conectados(); got != 1 {
		t.Errorf("Conectados() = %d, want 1", got)
	}

	// The broken client never comes back; later broadcasts skip it.
	b.BroadcastTodos(Frame{Tipo: FrameChamadoGarcom})
	if len(saudavel.frames) != 2 {
		t.Errorf("healthy client got %d frames, want 2", len(saudavel.frames))
	}
}

func TestDesconectarIdempotente(t *testing.T) {
	t.Parallel()
	b := NewBroadcaster(zap.NewNop())

	sink := &fakeSink{}
	cliente := NewCliente(sink, nil)
	b.Conectar(cliente)

	b.Desconectar(cliente)
	b.Desconectar(cliente)

	if got := b.Conectados(); got != 0 {
		t.Errorf("Conectados() = %d, want 0", got)
	}
	b.BroadcastTodos(Frame{Tipo: FrameMesaLiberada})
	if len(sink.frames) != 0 {
		t.Errorf("disconnected client received %d frames", len(sink.frames))
	}
}

func TestFrameMarshalMapFlattensDados(t *testing.T) {
	t.Parallel()
	frame := Frame{Tipo: FrameChamadoGarcom, Dados: map[string]any{"nomeMesa": "Mesa 3"}}

	out := frame.MarshalMap()
	if out["type"] != FrameChamadoGarcom {
		t.Errorf(`out["type"] = %v, want %q`, out["type"], FrameChamadoGarcom)
	}
	if out["nomeMesa"] != "Mesa 3" {
		t.Errorf(`out["nomeMesa"] = %v, want "Mesa 3"`, out["nomeMesa"])
	}
}
