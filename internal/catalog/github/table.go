package github

import "github.com/promac3k/sistema-gestao-atualizacoes/internal/catalog"

// Table maps normalized names to owner/repo pairs publishing releases.
var Table = []catalog.Mapping{
	{Key: "notepad++", ID: "notepad-plus-plus/notepad-plus-plus"},
	{Key: "vscode", ID: "microsoft/vscode"},
	{Key: "git", ID: "git-for-windows/git"},
	{Key: "powershell", ID: "PowerShell/PowerShell"},
	{Key: "keepassxc", ID: "keepassxreboot/keepassxc"},
	{Key: "obs", ID: "obsproject/obs-studio"},
	{Key: "greenshot", ID: "greenshot/greenshot"},
	{Key: "sharex", ID: "ShareX/ShareX"},
	{Key: "audacity", ID: "audacity/audacity"},
	{Key: "winscp", ID: "winscp/winscp"},
	{Key: "nodejs", ID: "nodejs/node"},
	{Key: "handbrake", ID: "HandBrake/HandBrake"},
	{Key: "sumatrapdf", ID: "sumatrapdfreader/sumatrapdf"},
	{Key: "autohotkey", ID: "AutoHotkey/AutoHotkey"},
	{Key: "7zip", ID: "ip7z/7zip"},
	{Key: "flameshot", ID: "flameshot-org/flameshot"},
	{Key: "terminal", ID: "microsoft/terminal"},
	{Key: "powertoys", ID: "microsoft/PowerToys"},
	{Key: "rufus", ID: "pbatard/rufus"},
	{Key: "inkscape", ID: "inkscape/inkscape"},
	{Key: "blender", ID: "blender/blender"},
	{Key: "python", ID: "python/cpython"},
}
