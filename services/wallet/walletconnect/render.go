package walletconnect

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	headerColor  = color.New(color.Bold).SprintFunc()
	labelColor   = color.New(color.FgCyan).SprintFunc()
	errorColor   = color.New(color.FgHiRed).SprintFunc()
	approveColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	rejectColor  = color.New(color.FgRed, color.Bold).SprintFunc()
)

// Render writes a terminal rendition of the sign modal.
func Render(w io.Writer, view ModalView) error {
	var b strings.Builder

	if view.MissingData {
		b.WriteString("Missing request data\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	fmt.Fprintf(&b, "%s\n\n", headerColor("Request a Signature"))
	if view.PeerIcon != "" {
		fmt.Fprintf(&b, "  %s\n", view.PeerIcon)
	}
	fmt.Fprintf(&b, "  %s\n", view.PeerName)
	fmt.Fprintf(&b, "  %s\n\n", view.PeerURL)
	fmt.Fprintf(&b, "%s %s\n", labelColor("Chain:"), view.ChainName)
	fmt.Fprintf(&b, "%s\n", labelColor("Message"))
	if view.MessageError != "" {
		fmt.Fprintf(&b, "  %s\n\n", errorColor(view.MessageError))
	} else {
		for _, line := range strings.Split(view.Message, "\n") {
			fmt.Fprintf(&b, "  %s\n", line)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%s  %s\n",
		rejectColor(button("Reject", view.RejectLoading)),
		approveColor(button("Approve", view.ApproveLoading)))

	_, err := io.WriteString(w, b.String())
	return err
}

func button(label string, loading bool) string {
	if loading {
		return "[ " + label + "... ]"
	}
	return "[ " + label + " ]"
}
