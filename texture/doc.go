// Package texture packs material maps into the layouts the renderer samples.
//
// The only layout today is the metallic/roughness texture: a 3-channel image
// whose red channel is unused (0), green channel holds roughness and blue
// channel holds metallic. The renderer reads the channels by position, so the
// order is fixed.
//
//	out, err := texture.Pack("textures/Rock_Metallic.png", "textures/Rock_Roughness.png")
//	// out == "textures/Rock_metallicRoughness.png"
package texture
