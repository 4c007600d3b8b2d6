package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/status-im/wc-signer/rpc/network"
	"github.com/status-im/wc-signer/services/wallet/walletconnect"
)

var errNoDecision = errors.New("input closed before a decision was made")

func review(cCtx *cli.Context) error {
	config, err := loadConfig(cCtx)
	if err != nil {
		return err
	}

	var request walletconnect.SessionRequest
	if err := readJSONFile(cCtx.Path(RequestFlag), walletconnect.SessionRequestSchema, &request); err != nil {
		return err
	}
	data := walletconnect.ModalData{RequestEvent: &request}
	if path := cCtx.Path(SessionFlag); path != "" {
		var session walletconnect.Session
		if err := readJSONFile(path, walletconnect.SessionSchema, &session); err != nil {
			return err
		}
		data.RequestSession = &session
	}

	// stdout carries only response lines, the modal is drawn on stderr
	var transport walletconnect.Transport = walletconnect.NewWriterTransport(cCtx.App.Writer)
	relay := cCtx.String(RelayFlag)
	if relay == "" && config.RelayConfig.Enabled {
		relay = config.RelayConfig.URL
	}
	if relay != "" {
		rpcTransport, err := walletconnect.DialRPCTransport(cCtx.Context, relay)
		if err != nil {
			return err
		}
		defer rpcTransport.Close()
		transport = rpcTransport
	}

	r := &reviewer{
		in:     bufio.NewReader(os.Stdin),
		out:    cCtx.App.ErrWriter,
		answer: cCtx.String(DecisionFlag),
	}
	dispatcher := walletconnect.NewDispatcher(walletconnect.NewSettings(), r.alert)
	modal := walletconnect.NewSignModal(data, dispatcher, transport, network.NewManager(config.Networks), nil)

	return r.run(cCtx.Context, modal)
}

// readJSONFile decodes path into v after checking it against schema.
func readJSONFile(path string, schema map[string]interface{}, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := walletconnect.ValidateDocument(schema, data); err != nil {
		return errors.Wrapf(err, "validate %s", path)
	}
	return errors.Wrapf(json.Unmarshal(data, v), "decode %s", path)
}

type reviewer struct {
	in     *bufio.Reader
	out    io.Writer
	answer string
}

func (r *reviewer) alert(request walletconnect.SessionRequest, message string) {
	fmt.Fprintln(r.out, color.RedString("! %s", message))
}

// run shows the modal until it is answered. A failed delivery keeps the
// modal open and asks again.
func (r *reviewer) run(ctx context.Context, modal *walletconnect.SignModal) error {
	for {
		view := modal.View()
		if err := walletconnect.Render(r.out, view); err != nil {
			return err
		}
		if view.MissingData {
			return walletconnect.ErrMissingRequestData
		}

		approve, err := r.decide()
		if err != nil {
			return err
		}

		if approve {
			err = modal.Approve(ctx)
		} else {
			err = modal.Reject(ctx)
		}
		if err == nil {
			return nil
		}
		if r.answer != "" || ctx.Err() != nil {
			return err
		}
		fmt.Fprintln(r.out, color.RedString("! %v", err))
	}
}

func (r *reviewer) decide() (bool, error) {
	if r.answer != "" {
		switch strings.ToLower(r.answer) {
		case "approve", "y", "yes":
			return true, nil
		case "reject", "n", "no":
			return false, nil
		}
		return false, fmt.Errorf("unknown decision %q", r.answer)
	}

	for {
		fmt.Fprint(r.out, "Approve? [y/N] > ")
		text, err := r.in.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return false, err
			}
			if strings.TrimSpace(text) == "" {
				return false, errNoDecision
			}
		}
		switch strings.ToLower(strings.TrimSpace(text)) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		}
		fmt.Fprintln(r.out, "Please answer y or n.")
	}
}
