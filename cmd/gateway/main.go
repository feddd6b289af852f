package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charlesren/userconfig"
	"github.com/charlesren/ylog"
	"github.com/charlesren/zapix"
	"github.com/spf13/viper"

	"github.com/charlesren/cli_device_gateway/cartography"
	"github.com/charlesren/cli_device_gateway/connection"
	"github.com/charlesren/cli_device_gateway/devicetype"
	"github.com/charlesren/cli_device_gateway/registry"
	"github.com/charlesren/cli_device_gateway/syncer"
)

var (
	zc         *zapix.ZabbixClient
	UserConfig *viper.Viper
	ConfPath   string
)

func init() {
	confPath := flag.String("c", "../conf/gateway.yml", "ConfigPath")
	flag.Parse()
	ConfPath = *confPath

	initConfig()
}

func initConfig() {
	var err error
	if UserConfig, err = userconfig.NewUserConfig(userconfig.WithPath(ConfPath)); err != nil {
		fmt.Printf("####LOAD_CONFIG_ERROR: %v", err)
		os.Exit(-1)
	}
	initLog()
	initZabbix()
}

func initLog() {
	logLevel := UserConfig.GetInt("server.log.applog.loglevel")
	logPath := "../logs/cli_gateway.log"
	logger := ylog.NewYLog(
		ylog.WithLogFile(logPath),
		ylog.WithMaxAge(3),
		ylog.WithMaxSize(100),
		ylog.WithMaxBackups(3),
		ylog.WithLevel(logLevel),
	)
	ylog.InitLogger(logger)
}

func initZabbix() {
	username := UserConfig.GetString("zabbix.username")
	password := UserConfig.GetString("zabbix.password")
	serverip := UserConfig.GetString("zabbix.serverip")
	serverport := UserConfig.GetString("zabbix.serverport")

	zc = zapix.NewZabbixClient()
	if os.Getenv("DEBUG") == "on" {
		zc.SetDebug(true)
	}
	url := fmt.Sprintf("http://%v:%v/api_jsonrpc.php", serverip, serverport)
	zc.Client.SetBaseURL(url)
	if err := zc.Login(url, username, password); err != nil {
		ylog.Errorf("Zabbix", "login err: %v", err)
		return
	}
	ylog.Infof("Zabbix", "login success")
}

func main() {
	ylog.Infof("Main", "gateway starting, config: %s", ConfPath)

	reg := registry.NewDefaultRegistry()
	if err := registry.RegisterBuiltins(reg); err != nil {
		ylog.Errorf("Main", "register builtin dialects: %v", err)
		return
	}
	for _, t := range reg.Types() {
		ylog.Infof("Main", "dialect available: %s", t)
	}

	// Static inventory beats the syncer when configured; useful for labs
	// with no Zabbix.
	if inventoryPath := UserConfig.GetString("gateway.inventory"); inventoryPath != "" {
		devices, err := cartography.LoadDevices(inventoryPath)
		if err != nil {
			ylog.Errorf("Main", "load static inventory: %v", err)
			return
		}
		for _, device := range devices {
			resolve(reg, device)
		}
		return
	}

	interval := UserConfig.GetDuration("gateway.syncinterval")
	inv, err := syncer.NewInventorySyncer(zc, interval)
	if err != nil {
		ylog.Errorf("Main", "create inventory syncer: %v", err)
		return
	}
	events, cancel := inv.Subscribe()
	defer cancel()

	go inv.Start()
	defer inv.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	ylog.Infof("Main", "signal handler installed (SIGINT/SIGTERM)")

	for {
		select {
		case event := <-events:
			switch event.Type {
			case syncer.DeviceCreate, syncer.DeviceUpdate:
				resolve(reg, event.Device)
			case syncer.DeviceDelete:
				ylog.Infof("Main", "device %s removed from inventory", event.Device.ID)
			}
		case <-sigChan:
			ylog.Infof("Main", "termination signal received, shutting down")
			return
		}
	}
}

// resolve derives the device type and confirms a dialect exists for it.
func resolve(reg registry.Registry, device cartography.DeviceConfig) {
	deviceType := devicetype.FromConfig(device)
	ylog.Infof("Main", "device %s (%s) resolved to %s", device.ID, device.IP, deviceType)

	protocol := connection.ProtocolScrapli
	if _, ok := connection.ScrapliPlatform(deviceType); !ok {
		protocol = connection.ProtocolSSH
	}

	if _, err := reg.Discover(deviceType, protocol); err != nil {
		// exact match failed: retry at wildcard version before giving up
		wildcard := devicetype.New(deviceType.Name(), devicetype.VersionAny)
		if _, err := reg.Discover(wildcard, protocol); err != nil {
			ylog.Warnf("Main", "no dialect for device %s: %v", device.ID, err)
			return
		}
		ylog.Infof("Main", "device %s handled by wildcard dialect %s", device.ID, wildcard)
		return
	}
	ylog.Infof("Main", "device %s handled by dialect %s", device.ID, deviceType)
}
