package main

import (
	"fmt"

	"github.com/NVIDIA/treemap"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

func renderSummary(tree treemap.TreeMap[string, int]) error {
	return pterm.DefaultBulletList.WithItems([]pterm.BulletListItem{
		{Level: 0, Text: "SIZE   : " + fmt.Sprint(tree.Len())},
		{Level: 0, Text: "HEIGHT : " + fmt.Sprint(tree.Height())},
		{Level: 0, Text: "VALUES : " + fmt.Sprint(len(tree.Values()))},
	}).Render()
}

// leveledListFromTree lists every node in pre-order at its depth, tagged with
// the side it hangs from so that a lone child still reads as left or right.
func leveledListFromTree(tree treemap.TreeMap[string, int]) pterm.LeveledList {
	leveledList := pterm.LeveledList{}

	tree.WalkShape(func(depth int, side treemap.ChildSide, key string, value int) bool {
		text := fmt.Sprintf("%s = %d", key, value)
		if treemap.RootSide != side {
			text = fmt.Sprintf("[%s] %s", side, text)
		}

		leveledList = append(leveledList, pterm.LeveledListItem{Level: depth, Text: text})
		return true
	})

	return leveledList
}

func renderTree(tree treemap.TreeMap[string, int]) error {
	if tree.IsEmpty() {
		pterm.Info.Println("tree is empty")
		return nil
	}

	root := putils.TreeFromLeveledList(leveledListFromTree(tree))

	return pterm.DefaultTree.WithRoot(root).Render()
}
