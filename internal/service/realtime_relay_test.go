package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/Lucasdx7/Sistema-sub000/internal/events"
	"github.com/Lucasdx7/Sistema-sub000/internal/realtime"
)

type captureSink struct {
	frames []realtime.Frame
}

func (s *captureSink) Send(frame realtime.Frame) error {
	s.frames = append(s.frames, frame)
	return nil
}

func (s *captureSink) Close() error { return nil }

type relayFixture struct {
	dispatcher  events.Dispatcher
	broadcaster *realtime.Broadcaster
}

func newRelayFixture() *relayFixture {
	dispatcher := events.NewInMemoryDispatcher()
	broadcaster := realtime.NewBroadcaster(zap.NewNop())
	NewRealtimeRelay(dispatcher, broadcaster, zap.NewNop()).RegisterHandlers()
	return &relayFixture{dispatcher: dispatcher, broadcaster: broadcaster}
}

func (f *relayFixture) conectar(sessaoID *string) *captureSink {
	sink := &captureSink{}
	f.broadcaster.Conectar(realtime.NewCliente(sink, sessaoID))
	return sink
}

func tiposRecebidos(sink *captureSink) []string {
	tipos := make([]string, 0, len(sink.frames))
	for _, frame := range sink.frames {
		tipos = append(tipos, frame.Tipo)
	}
	return tipos
}

func TestRelayChamadoGarcomAlcancaTodos(t *testing.T) {
	t.Parallel()
	f := newRelayFixture()
	staff := f.conectar(nil)
	sessao := "s-1"
	mesa := f.conectar(&sessao)

	_ = f.dispatcher.Publish(context.Background(), events.Event{
		Type:    events.EventGarcomChamado,
		Actor:   MesaActor("mesa-3"),
		Payload: events.GarcomChamadoPayload{MesaID: "mesa-3", NomeMesa: "Mesa 3"},
	})

	for nome, sink := range map[string]*captureSink{"staff": staff, "mesa": mesa} {
		if len(sink.frames) != 1 {
			t.Fatalf("%s got %d frames, want 1", nome, len(sink.frames))
		}
		frame := sink.frames[0]
		if frame.Tipo != realtime.FrameChamadoGarcom {
			t.Errorf("%s Tipo = %q, want %q", nome, frame.Tipo, realtime.FrameChamadoGarcom)
		}
		if frame.Dados["nomeMesa"] != "Mesa 3" {
			t.Errorf("%s nomeMesa = %v, want Mesa 3", nome, frame.Dados["nomeMesa"])
		}
	}
}

func TestRelayCardapioAtualizadoAlcancaTodos(t *testing.T) {
	t.Parallel()
	f := newRelayFixture()
	staff := f.conectar(nil)

	_ = f.dispatcher.Publish(context.Background(), events.Event{
		Type:    events.EventCardapioAtualizado,
		Actor:   UsuarioActor("usuario-1"),
		Payload: events.CardapioAtualizadoPayload{ItemID: "item-1", Acao: "criado"},
	})

	got := tiposRecebidos(staff)
	if len(got) != 1 || got[0] != realtime.FrameCardapioAtualizado {
		t.Fatalf("frames = %v, want [%s]", got, realtime.FrameCardapioAtualizado)
	}
}

func TestRelaySessaoFechadaEscopaEAnuncia(t *testing.T) {
	t.Parallel()
	f := newRelayFixture()
	s1, s2 := "s-1", "s-2"
	alvo := f.conectar(&s1)
	outra := f.conectar(&s2)
	staff := f.conectar(nil)

	_ = f.dispatcher.Publish(context.Background(), events.Event{
		Type:     events.EventSessaoFechada,
		SessaoID: s1,
		Actor:    UsuarioActor("usuario-1"),
		Payload:  events.SessaoFechadaPayload{MesaID: "mesa-1", NomeMesa: "Mesa 1", TotalCentavos: 4200},
	})

	// The closing session gets SESSAO_ENCERRADA plus the broadcast
	// MESA_LIBERADA; everyone else only sees the table freeing up.
	gotAlvo := tiposRecebidos(alvo)
	if len(gotAlvo) != 2 || gotAlvo[0] != realtime.FrameSessaoEncerrada || gotAlvo[1] != realtime.FrameMesaLiberada {
		t.Fatalf("closing session frames = %v", gotAlvo)
	}
	if total := alvo.frames[0].Dados["total_centavos"]; total != int64(4200) {
		t.Errorf("total_centavos = %v, want 4200", total)
	}

	for nome, sink := range map[string]*captureSink{"outra sessao": outra, "staff": staff} {
		got := tiposRecebidos(sink)
		if len(got) != 1 || got[0] != realtime.FrameMesaLiberada {
			t.Errorf("%s frames = %v, want [%s]", nome, got, realtime.FrameMesaLiberada)
		}
	}
}

func TestRelayPedidosAtualizamConta(t *testing.T) {
	t.Parallel()
	f := newRelayFixture()
	s1, s2 := "s-1", "s-2"
	alvo := f.conectar(&s1)
	outra := f.conectar(&s2)
	staff := f.conectar(nil)

	ctx := context.Background()
	_ = f.dispatcher.Publish(ctx, events.Event{
		Type:     events.EventPedidoLancado,
		SessaoID: s1,
		Actor:    MesaActor("mesa-1"),
		Payload:  events.PedidoPayload{PedidoID: "pedido-1", NomeItem: "X-Salada", Quantidade: 2},
	})
	_ = f.dispatcher.Publish(ctx, events.Event{
		Type:     events.EventPedidoCancelado,
		SessaoID: s1,
		Actor:    UsuarioActor("usuario-1"),
		Payload:  events.PedidoPayload{PedidoID: "pedido-1", NomeItem: "X-Salada", Quantidade: 2},
	})

	got := tiposRecebidos(alvo)
	if len(got) != 2 || got[0] != realtime.FrameContaAtualizada || got[1] != realtime.FrameContaAtualizada {
		t.Fatalf("session frames = %v, want two CONTA_ATUALIZADA", got)
	}
	if len(outra.frames) != 0 || len(staff.frames) != 0 {
		t.Fatalf("unrelated observers received account frames: %d/%d", len(outra.frames), len(staff.frames))
	}
}
