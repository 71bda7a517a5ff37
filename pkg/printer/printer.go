package printer

import (
	"fmt"
	"net"
	"os"
	"time"
)

// Printer sends a rendered receipt, as raw ESC/POS bytes, to a thermal
// printer at the counter.
type Printer interface {
	// Print sends one receipt's worth of ESC/POS bytes.
	Print(data []byte) error
	// Close releases the underlying device or connection.
	Close() error
	// IsConnected reports whether the printer is reachable right now.
	IsConnected() bool
}

// --- USB printer, a receipt printer on a device file like /dev/usb/lp0 ---

type usbPrinter struct {
	path string
}

// NewUSBPrinter returns a Printer backed by a USB device file.
func NewUSBPrinter(devicePath string) Printer {
	return &usbPrinter{path: devicePath}
}

func (p *usbPrinter) Print(data []byte) error {
	f, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printer: open receipt printer %s: %w", p.path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("printer: write receipt to %s: %w", p.path, err)
	}
	return nil
}

func (p *usbPrinter) Close() error {
	// The device is opened per receipt, nothing held between jobs.
	return nil
}

func (p *usbPrinter) IsConnected() bool {
	_, err := os.Stat(p.path)
	return err == nil
}

// --- Network printer, a receipt printer listening on raw TCP (port 9100) ---

type networkPrinter struct {
	address string
	timeout time.Duration
}

// NewNetworkPrinter returns a Printer that dials the given host:port
// for each receipt, e.g. "192.168.1.100:9100".
func NewNetworkPrinter(address string) Printer {
	return &networkPrinter{
		address: address,
		timeout: 5 * time.Second,
	}
}

func (p *networkPrinter) Print(data []byte) error {
	conn, err := net.DialTimeout("tcp", p.address, p.timeout)
	if err != nil {
		return fmt.Errorf("printer: reach receipt printer at %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: write receipt to %s: %w", p.address, err)
	}
	return nil
}

func (p *networkPrinter) Close() error {
	// Connections are per receipt, nothing held between jobs.
	return nil
}

func (p *networkPrinter) IsConnected() bool {
	conn, err := net.DialTimeout("tcp", p.address, 2*time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// --- Null printer, for counters that only hand out the PDF ---

type nullPrinter struct{}

// NewNullPrinter returns a Printer that swallows every receipt. Used
// when no thermal hardware is configured; clients fall back to the PDF.
func NewNullPrinter() Printer {
	return &nullPrinter{}
}

func (p *nullPrinter) Print(data []byte) error {
	return nil
}

func (p *nullPrinter) Close() error {
	return nil
}

func (p *nullPrinter) IsConnected() bool {
	return false
}

// NewPrinterFromConfig builds the receipt printer named by configuration.
//
//	printerType: "usb", "network", or "none"
//	usbPath: device path for USB printers (e.g. "/dev/usb/lp0")
//	address: TCP address for network printers (e.g. "192.168.1.100:9100")
func NewPrinterFromConfig(printerType, usbPath, address string) (Printer, error) {
	switch printerType {
	case "usb":
		if usbPath == "" {
			return nil, fmt.Errorf("printer: usb printer needs a device path")
		}
		return NewUSBPrinter(usbPath), nil
	case "network":
		if address == "" {
			return nil, fmt.Errorf("printer: network printer needs an address")
		}
		return NewNetworkPrinter(address), nil
	case "none", "":
		return NewNullPrinter(), nil
	default:
		return nil, fmt.Errorf("printer: unknown printer type %q (use usb, network, or none)", printerType)
	}
}
