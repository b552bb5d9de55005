package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	Client   Client
	Data     Data
	IPInfo   IPInfo
	Theme    Theme
	Server   Server
	Health   Health
	Logger   Logger
	Shoutrrr Shoutrrr
}

func (c *Config) SetDefaults() {
	c.Client.setDefaults()
	c.Data.setDefaults()
	c.IPInfo.setDefaults()
	c.Theme.setDefaults()
	c.Server.setDefaults()
	c.Health.SetDefaults()
	c.Logger.setDefaults()
	c.Shoutrrr.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"client":   &c.Client,
		"data":     &c.Data,
		"ipinfo":   &c.IPInfo,
		"theme":    &c.Theme,
		"server":   &c.Server,
		"health":   &c.Health,
		"logger":   &c.Logger,
		"shoutrrr": &c.Shoutrrr,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Client.toLinesNode())
	node.AppendNode(c.Data.toLinesNode())
	node.AppendNode(c.IPInfo.toLinesNode())
	node.AppendNode(c.Theme.toLinesNode())
	node.AppendNode(c.Server.toLinesNode())
	node.AppendNode(c.Health.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	if shoutrrrNode := c.Shoutrrr.ToLinesNode(); shoutrrrNode != nil {
		node.AppendNode(shoutrrrNode)
	}
	return node
}

func (c *Config) Read(reader *reader.Reader) (err error) {
	err = c.Client.read(reader)
	if err != nil {
		return fmt.Errorf("reading client settings: %w", err)
	}

	c.Data.read(reader)

	err = c.IPInfo.read(reader)
	if err != nil {
		return fmt.Errorf("reading ipinfo settings: %w", err)
	}

	c.Theme.read(reader)

	err = c.Server.read(reader)
	if err != nil {
		return fmt.Errorf("reading server settings: %w", err)
	}

	c.Health.Read(reader)

	err = c.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	c.Shoutrrr.read(reader)

	return nil
}
